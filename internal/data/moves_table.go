package data

// Generated from the trainer battle move list. Edit by hand with care.

var fastMoveDefs = []FastMove{
	{ID: 200, Name: "Fury Cutter", Type: Bug, Power: 2, Energy: 4, Turns: 1},
	{ID: 201, Name: "Bug Bite", Type: Bug, Power: 3, Energy: 3, Turns: 1},
	{ID: 202, Name: "Bite", Type: Dark, Power: 4, Energy: 2, Turns: 1},
	{ID: 203, Name: "Sucker Punch", Type: Dark, Power: 5, Energy: 7, Turns: 2},
	{ID: 204, Name: "Dragon Breath", Type: Dragon, Power: 4, Energy: 3, Turns: 1},
	{ID: 205, Name: "Thunder Shock", Type: Electric, Power: 3, Energy: 9, Turns: 2},
	{ID: 206, Name: "Spark", Type: Electric, Power: 6, Energy: 7, Turns: 2},
	{ID: 207, Name: "Low Kick", Type: Fighting, Power: 4, Energy: 5, Turns: 2},
	{ID: 208, Name: "Karate Chop", Type: Fighting, Power: 5, Energy: 8, Turns: 2},
	{ID: 209, Name: "Ember", Type: Fire, Power: 7, Energy: 6, Turns: 2},
	{ID: 210, Name: "Wing Attack", Type: Flying, Power: 5, Energy: 8, Turns: 2},
	{ID: 211, Name: "Peck", Type: Flying, Power: 6, Energy: 5, Turns: 2},
	{ID: 212, Name: "Lick", Type: Ghost, Power: 3, Energy: 3, Turns: 1},
	{ID: 213, Name: "Shadow Claw", Type: Ghost, Power: 6, Energy: 8, Turns: 2},
	{ID: 214, Name: "Vine Whip", Type: Grass, Power: 5, Energy: 8, Turns: 2},
	{ID: 215, Name: "Razor Leaf", Type: Grass, Power: 10, Energy: 4, Turns: 2},
	{ID: 216, Name: "Mud Shot", Type: Ground, Power: 3, Energy: 9, Turns: 2},
	{ID: 217, Name: "Ice Shard", Type: Ice, Power: 9, Energy: 10, Turns: 3},
	{ID: 218, Name: "Frost Breath", Type: Ice, Power: 7, Energy: 5, Turns: 2},
	{ID: 219, Name: "Quick Attack", Type: Normal, Power: 5, Energy: 8, Turns: 2},
	{ID: 220, Name: "Scratch", Type: Normal, Power: 4, Energy: 2, Turns: 1},
	{ID: 221, Name: "Tackle", Type: Normal, Power: 3, Energy: 3, Turns: 1},
	{ID: 222, Name: "Pound", Type: Normal, Power: 4, Energy: 4, Turns: 2},
	{ID: 223, Name: "Cut", Type: Normal, Power: 3, Energy: 2, Turns: 1},
	{ID: 224, Name: "Poison Jab", Type: Poison, Power: 7, Energy: 7, Turns: 2},
	{ID: 225, Name: "Acid", Type: Poison, Power: 6, Energy: 5, Turns: 2},
	{ID: 226, Name: "Psycho Cut", Type: Psychic, Power: 3, Energy: 9, Turns: 2},
	{ID: 227, Name: "Rock Throw", Type: Rock, Power: 8, Energy: 5, Turns: 2},
	{ID: 228, Name: "Metal Claw", Type: Steel, Power: 5, Energy: 6, Turns: 2},
	{ID: 229, Name: "Bullet Punch", Type: Steel, Power: 6, Energy: 7, Turns: 2},
	{ID: 230, Name: "Water Gun", Type: Water, Power: 3, Energy: 3, Turns: 1},
	{ID: 231, Name: "Splash", Type: Water, Power: 0, Energy: 12, Turns: 4},
	{ID: 232, Name: "Water Gun (Blastoise)", Type: Water, Power: 6, Energy: 4, Turns: 2, Clone: true},
	{ID: 233, Name: "Mud-Slap", Type: Ground, Power: 11, Energy: 8, Turns: 3},
	{ID: 234, Name: "Zen Headbutt", Type: Psychic, Power: 8, Energy: 6, Turns: 3},
	{ID: 235, Name: "Confusion", Type: Psychic, Power: 16, Energy: 12, Turns: 4},
	{ID: 236, Name: "Poison Sting", Type: Poison, Power: 3, Energy: 9, Turns: 2},
	{ID: 237, Name: "Bubble", Type: Water, Power: 7, Energy: 11, Turns: 3},
	{ID: 238, Name: "Feint Attack", Type: Dark, Power: 6, Energy: 6, Turns: 2},
	{ID: 239, Name: "Steel Wing", Type: Steel, Power: 7, Energy: 5, Turns: 2},
	{ID: 240, Name: "Fire Fang", Type: Fire, Power: 8, Energy: 5, Turns: 2},
	{ID: 241, Name: "Rock Smash", Type: Fighting, Power: 9, Energy: 7, Turns: 3},
	{ID: 242, Name: "Transform", Type: Normal, Power: 0, Energy: 0, Turns: 3},
	{ID: 243, Name: "Counter", Type: Fighting, Power: 8, Energy: 7, Turns: 2},
	{ID: 244, Name: "Powder Snow", Type: Ice, Power: 5, Energy: 8, Turns: 2},
	{ID: 249, Name: "Charge Beam", Type: Electric, Power: 5, Energy: 11, Turns: 3},
	{ID: 250, Name: "Volt Switch", Type: Electric, Power: 12, Energy: 16, Turns: 4},
	{ID: 253, Name: "Dragon Tail", Type: Dragon, Power: 13, Energy: 9, Turns: 3},
	{ID: 255, Name: "Air Slash", Type: Flying, Power: 9, Energy: 9, Turns: 3},
	{ID: 260, Name: "Infestation", Type: Bug, Power: 6, Energy: 12, Turns: 3},
	{ID: 261, Name: "Struggle Bug", Type: Bug, Power: 9, Energy: 8, Turns: 3},
	{ID: 263, Name: "Astonish", Type: Ghost, Power: 5, Energy: 10, Turns: 3},
	{ID: 264, Name: "Hex", Type: Ghost, Power: 6, Energy: 12, Turns: 3},
	{ID: 266, Name: "Iron Tail", Type: Steel, Power: 9, Energy: 6, Turns: 3},
	{ID: 269, Name: "Fire Spin", Type: Fire, Power: 9, Energy: 10, Turns: 3},
	{ID: 271, Name: "Bullet Seed", Type: Grass, Power: 5, Energy: 13, Turns: 3},
	{ID: 274, Name: "Extrasensory", Type: Psychic, Power: 8, Energy: 10, Turns: 3},
	{ID: 278, Name: "Snarl", Type: Dark, Power: 5, Energy: 13, Turns: 3},
	{ID: 281, Name: "Hidden Power", Type: Normal, Power: 9, Energy: 8, Turns: 3},
	{ID: 282, Name: "Take Down", Type: Normal, Power: 5, Energy: 8, Turns: 3},
	{ID: 283, Name: "Waterfall", Type: Water, Power: 12, Energy: 8, Turns: 3},
	{ID: 287, Name: "Yawn", Type: Normal, Power: 0, Energy: 12, Turns: 4},
	{ID: 291, Name: "Present", Type: Normal, Power: 3, Energy: 12, Turns: 3},
	{ID: 297, Name: "Smack Down", Type: Rock, Power: 12, Energy: 8, Turns: 3},
	{ID: 320, Name: "Charm", Type: Fairy, Power: 15, Energy: 6, Turns: 3},
	{ID: 325, Name: "Lock-On", Type: Normal, Power: 1, Energy: 5, Turns: 1},
	{ID: 326, Name: "Thunder Fang", Type: Electric, Power: 8, Energy: 5, Turns: 2},
	{ID: 327, Name: "Ice Fang", Type: Ice, Power: 8, Energy: 5, Turns: 2},
	{ID: 345, Name: "Gust", Type: Flying, Power: 16, Energy: 12, Turns: 4},
	{ID: 346, Name: "Incinerate", Type: Fire, Power: 15, Energy: 20, Turns: 5},
	{ID: 350, Name: "Fairy Wind", Type: Fairy, Power: 3, Energy: 9, Turns: 2},
	{ID: 356, Name: "Double Kick", Type: Fighting, Power: 8, Energy: 12, Turns: 3},
	{ID: 357, Name: "Magical Leaf", Type: Grass, Power: 10, Energy: 10, Turns: 3},
	{ID: 368, Name: "Rollout", Type: Rock, Power: 5, Energy: 13, Turns: 3},
	{ID: 373, Name: "Water Shuriken", Type: Water, Power: 6, Energy: 14, Turns: 3},
	{ID: 385, Name: "Leafage", Type: Grass, Power: 6, Energy: 7, Turns: 2},
	{ID: 387, Name: "Geomancy", Type: Fairy, Power: 4, Energy: 13, Turns: 3},
}

var chargeMoveDefs = []ChargeMove{
	{ID: 13, Name: "Wrap", Type: Normal, Power: 60, Energy: 45},
	{ID: 14, Name: "Hyper Beam", Type: Normal, Power: 150, Energy: 80},
	{ID: 16, Name: "Dark Pulse", Type: Dark, Power: 80, Energy: 50},
	{ID: 18, Name: "Sludge", Type: Poison, Power: 50, Energy: 40},
	{ID: 20, Name: "Vice Grip", Type: Normal, Power: 40, Energy: 40},
	{ID: 21, Name: "Flame Wheel", Type: Fire, Power: 60, Energy: 55},
	{ID: 22, Name: "Megahorn", Type: Bug, Power: 110, Energy: 55},
	{ID: 24, Name: "Flamethrower", Type: Fire, Power: 90, Energy: 55},
	{ID: 26, Name: "Dig", Type: Ground, Power: 80, Energy: 50},
	{ID: 28, Name: "Cross Chop", Type: Fighting, Power: 50, Energy: 35},
	{ID: 30, Name: "Psybeam", Type: Psychic, Power: 70, Energy: 60},
	{ID: 31, Name: "Earthquake", Type: Ground, Power: 110, Energy: 65},
	{ID: 32, Name: "Stone Edge", Type: Rock, Power: 100, Energy: 55},
	{ID: 33, Name: "Ice Punch", Type: Ice, Power: 55, Energy: 40},
	{ID: 34, Name: "Heart Stamp", Type: Psychic, Power: 40, Energy: 40},
	{ID: 35, Name: "Discharge", Type: Electric, Power: 65, Energy: 45},
	{ID: 36, Name: "Flash Cannon", Type: Steel, Power: 110, Energy: 70},
	{ID: 38, Name: "Drill Peck", Type: Flying, Power: 65, Energy: 40},
	{ID: 39, Name: "Ice Beam", Type: Ice, Power: 90, Energy: 55},
	{ID: 40, Name: "Blizzard", Type: Ice, Power: 140, Energy: 75},
	{ID: 42, Name: "Heat Wave", Type: Fire, Power: 95, Energy: 75},
	{ID: 45, Name: "Aerial Ace", Type: Flying, Power: 55, Energy: 40},
	{ID: 46, Name: "Drill Run", Type: Ground, Power: 80, Energy: 45},
	{ID: 47, Name: "Petal Blizzard", Type: Grass, Power: 110, Energy: 65},
	{ID: 48, Name: "Mega Drain", Type: Grass, Power: 25, Energy: 55},
	{ID: 49, Name: "Bug Buzz", Type: Bug, Power: 100, Energy: 60, Buff: &StatBuff{OpponentDefense: -1}, BuffChance: 30},
	{ID: 50, Name: "Poison Fang", Type: Poison, Power: 45, Energy: 40, Buff: &StatBuff{OpponentDefense: -1}, BuffChance: 100},
	{ID: 51, Name: "Night Slash", Type: Dark, Power: 50, Energy: 35, Buff: &StatBuff{SelfAttack: 2}, BuffChance: 12.5},
	{ID: 53, Name: "Bubble Beam", Type: Water, Power: 25, Energy: 40, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 100},
	{ID: 54, Name: "Submission", Type: Fighting, Power: 60, Energy: 50},
	{ID: 56, Name: "Low Sweep", Type: Fighting, Power: 40, Energy: 40},
	{ID: 57, Name: "Aqua Jet", Type: Water, Power: 45, Energy: 45},
	{ID: 58, Name: "Aqua Tail", Type: Water, Power: 50, Energy: 35},
	{ID: 59, Name: "Seed Bomb", Type: Grass, Power: 60, Energy: 45},
	{ID: 60, Name: "Psyshock", Type: Psychic, Power: 70, Energy: 45},
	{ID: 62, Name: "Ancient Power", Type: Rock, Power: 60, Energy: 45, Buff: &StatBuff{SelfAttack: 1, SelfDefense: 1}, BuffChance: 10},
	{ID: 63, Name: "Rock Tomb", Type: Rock, Power: 70, Energy: 60, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 100},
	{ID: 64, Name: "Rock Slide", Type: Rock, Power: 75, Energy: 45},
	{ID: 65, Name: "Power Gem", Type: Rock, Power: 80, Energy: 60},
	{ID: 66, Name: "Shadow Sneak", Type: Ghost, Power: 50, Energy: 45},
	{ID: 67, Name: "Shadow Punch", Type: Ghost, Power: 40, Energy: 35},
	{ID: 69, Name: "Ominous Wind", Type: Ghost, Power: 45, Energy: 45, Buff: &StatBuff{SelfAttack: 1, SelfDefense: 1}, BuffChance: 10},
	{ID: 70, Name: "Shadow Ball", Type: Ghost, Power: 100, Energy: 55},
	{ID: 72, Name: "Magnet Bomb", Type: Steel, Power: 70, Energy: 45},
	{ID: 74, Name: "Iron Head", Type: Steel, Power: 70, Energy: 50},
	{ID: 75, Name: "Parabolic Charge", Type: Electric, Power: 65, Energy: 55},
	{ID: 77, Name: "Thunder Punch", Type: Electric, Power: 55, Energy: 40},
	{ID: 78, Name: "Thunder", Type: Electric, Power: 100, Energy: 60},
	{ID: 79, Name: "Thunderbolt", Type: Electric, Power: 90, Energy: 55},
	{ID: 80, Name: "Twister", Type: Dragon, Power: 45, Energy: 45},
	{ID: 82, Name: "Dragon Pulse", Type: Dragon, Power: 90, Energy: 60},
	{ID: 83, Name: "Dragon Claw", Type: Dragon, Power: 50, Energy: 35},
	{ID: 84, Name: "Disarming Voice", Type: Fairy, Power: 70, Energy: 45},
	{ID: 85, Name: "Draining Kiss", Type: Fairy, Power: 60, Energy: 55},
	{ID: 86, Name: "Dazzling Gleam", Type: Fairy, Power: 110, Energy: 70},
	{ID: 87, Name: "Moonblast", Type: Fairy, Power: 110, Energy: 60, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 10},
	{ID: 88, Name: "Play Rough", Type: Fairy, Power: 90, Energy: 60},
	{ID: 89, Name: "Cross Poison", Type: Poison, Power: 50, Energy: 35, Buff: &StatBuff{SelfAttack: 2}, BuffChance: 12.5},
	{ID: 90, Name: "Sludge Bomb", Type: Poison, Power: 80, Energy: 50},
	{ID: 91, Name: "Sludge Wave", Type: Poison, Power: 110, Energy: 65},
	{ID: 92, Name: "Gunk Shot", Type: Poison, Power: 130, Energy: 75},
	{ID: 94, Name: "Bone Club", Type: Ground, Power: 40, Energy: 35},
	{ID: 95, Name: "Bulldoze", Type: Ground, Power: 80, Energy: 60},
	{ID: 96, Name: "Mud Bomb", Type: Ground, Power: 60, Energy: 40},
	{ID: 99, Name: "Signal Beam", Type: Bug, Power: 75, Energy: 55, Buff: &StatBuff{OpponentAttack: -1, OpponentDefense: -1}, BuffChance: 20},
	{ID: 100, Name: "X-Scissor", Type: Bug, Power: 65, Energy: 40},
	{ID: 101, Name: "Flame Charge", Type: Fire, Power: 65, Energy: 50, Buff: &StatBuff{SelfAttack: 1}, BuffChance: 100},
	{ID: 102, Name: "Flame Burst", Type: Fire, Power: 70, Energy: 55},
	{ID: 103, Name: "Fire Blast", Type: Fire, Power: 140, Energy: 80},
	{ID: 104, Name: "Brine", Type: Water, Power: 60, Energy: 50},
	{ID: 105, Name: "Water Pulse", Type: Water, Power: 70, Energy: 60},
	{ID: 106, Name: "Scald", Type: Water, Power: 80, Energy: 50, Buff: &StatBuff{OpponentDefense: -1}, BuffChance: 30},
	{ID: 107, Name: "Hydro Pump", Type: Water, Power: 130, Energy: 75},
	{ID: 108, Name: "Psychic", Type: Psychic, Power: 85, Energy: 55, Buff: &StatBuff{OpponentDefense: -1}, BuffChance: 10},
	{ID: 109, Name: "Psystrike", Type: Psychic, Power: 90, Energy: 45},
	{ID: 111, Name: "Icy Wind", Type: Ice, Power: 60, Energy: 45, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 100},
	{ID: 114, Name: "Giga Drain", Type: Grass, Power: 50, Energy: 80},
	{ID: 115, Name: "Fire Punch", Type: Fire, Power: 55, Energy: 40},
	{ID: 116, Name: "Solar Beam", Type: Grass, Power: 150, Energy: 80},
	{ID: 117, Name: "Leaf Blade", Type: Grass, Power: 70, Energy: 35},
	{ID: 118, Name: "Power Whip", Type: Grass, Power: 90, Energy: 50},
	{ID: 121, Name: "Air Cutter", Type: Flying, Power: 60, Energy: 55},
	{ID: 122, Name: "Hurricane", Type: Flying, Power: 110, Energy: 65},
	{ID: 123, Name: "Brick Break", Type: Fighting, Power: 40, Energy: 35},
	{ID: 125, Name: "Swift", Type: Normal, Power: 60, Energy: 55},
	{ID: 126, Name: "Horn Attack", Type: Normal, Power: 40, Energy: 35},
	{ID: 127, Name: "Stomp", Type: Normal, Power: 55, Energy: 40},
	{ID: 129, Name: "Hyper Fang", Type: Normal, Power: 80, Energy: 50},
	{ID: 131, Name: "Body Slam", Type: Normal, Power: 60, Energy: 35},
	{ID: 132, Name: "Rest", Type: Normal, Power: 50, Energy: 35},
	{ID: 133, Name: "Struggle", Type: Normal, Power: 35, Energy: 100},
	{ID: 134, Name: "Scald (Blastoise)", Type: Water, Power: 50, Energy: 80, Clone: true},
	{ID: 135, Name: "Hydro Pump (Blastoise)", Type: Water, Power: 90, Energy: 80, Clone: true},
	{ID: 136, Name: "Wrap Green", Type: Normal, Power: 25, Energy: 45, Clone: true},
	{ID: 137, Name: "Wrap Pink", Type: Normal, Power: 25, Energy: 45, Clone: true},
	{ID: 245, Name: "Close Combat", Type: Fighting, Power: 100, Energy: 45, Buff: &StatBuff{SelfDefense: -2}, BuffChance: 100},
	{ID: 246, Name: "Dynamic Punch", Type: Fighting, Power: 90, Energy: 50},
	{ID: 247, Name: "Focus Blast", Type: Fighting, Power: 150, Energy: 75},
	{ID: 248, Name: "Aurora Beam", Type: Ice, Power: 80, Energy: 60},
	{ID: 251, Name: "Wild Charge", Type: Electric, Power: 100, Energy: 45, Buff: &StatBuff{SelfDefense: -2}, BuffChance: 100},
	{ID: 252, Name: "Zap Cannon", Type: Electric, Power: 150, Energy: 80, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 66},
	{ID: 254, Name: "Avalanche", Type: Ice, Power: 90, Energy: 45},
	{ID: 256, Name: "Brave Bird", Type: Flying, Power: 130, Energy: 55, Buff: &StatBuff{SelfDefense: -3}, BuffChance: 100},
	{ID: 257, Name: "Sky Attack", Type: Flying, Power: 75, Energy: 50},
	{ID: 258, Name: "Sand Tomb", Type: Ground, Power: 25, Energy: 40, Buff: &StatBuff{OpponentDefense: -1}, BuffChance: 100},
	{ID: 259, Name: "Rock Blast", Type: Rock, Power: 50, Energy: 40},
	{ID: 262, Name: "Silver Wind", Type: Bug, Power: 60, Energy: 45, Buff: &StatBuff{SelfAttack: 1, SelfDefense: 1}, BuffChance: 10},
	{ID: 265, Name: "Night Shade", Type: Ghost, Power: 60, Energy: 55},
	{ID: 267, Name: "Gyro Ball", Type: Steel, Power: 80, Energy: 60},
	{ID: 268, Name: "Heavy Slam", Type: Steel, Power: 70, Energy: 50},
	{ID: 270, Name: "Overheat", Type: Fire, Power: 130, Energy: 55, Buff: &StatBuff{SelfAttack: -2}, BuffChance: 100},
	{ID: 272, Name: "Grass Knot", Type: Grass, Power: 90, Energy: 50},
	{ID: 273, Name: "Energy Ball", Type: Grass, Power: 90, Energy: 55, Buff: &StatBuff{OpponentDefense: -1}, BuffChance: 10},
	{ID: 275, Name: "Future Sight", Type: Psychic, Power: 120, Energy: 65},
	{ID: 276, Name: "Mirror Coat", Type: Psychic, Power: 60, Energy: 55},
	{ID: 277, Name: "Outrage", Type: Dragon, Power: 110, Energy: 60},
	{ID: 279, Name: "Crunch", Type: Dark, Power: 70, Energy: 45, Buff: &StatBuff{OpponentDefense: -1}, BuffChance: 30},
	{ID: 280, Name: "Foul Play", Type: Dark, Power: 70, Energy: 45},
	{ID: 284, Name: "Surf", Type: Water, Power: 65, Energy: 40},
	{ID: 285, Name: "Draco Meteor", Type: Dragon, Power: 150, Energy: 65, Buff: &StatBuff{SelfAttack: -2}, BuffChance: 100},
	{ID: 286, Name: "Doom Desire", Type: Steel, Power: 75, Energy: 40},
	{ID: 288, Name: "Psycho Boost", Type: Psychic, Power: 70, Energy: 35, Buff: &StatBuff{SelfAttack: -2}, BuffChance: 100},
	{ID: 289, Name: "Origin Pulse", Type: Water, Power: 130, Energy: 60},
	{ID: 290, Name: "Precipice Blades", Type: Ground, Power: 130, Energy: 60},
	{ID: 292, Name: "Weather Ball Fire", Type: Fire, Power: 55, Energy: 35},
	{ID: 293, Name: "Weather Ball Ice", Type: Ice, Power: 55, Energy: 35},
	{ID: 294, Name: "Weather Ball Rock", Type: Rock, Power: 55, Energy: 35},
	{ID: 295, Name: "Weather Ball Water", Type: Water, Power: 55, Energy: 35},
	{ID: 296, Name: "Frenzy Plant", Type: Grass, Power: 100, Energy: 45},
	{ID: 298, Name: "Blast Burn", Type: Fire, Power: 110, Energy: 50},
	{ID: 299, Name: "Hydro Cannon", Type: Water, Power: 80, Energy: 40},
	{ID: 300, Name: "Last Resort", Type: Normal, Power: 90, Energy: 55},
	{ID: 301, Name: "Meteor Mash", Type: Steel, Power: 100, Energy: 50},
	{ID: 302, Name: "Skull Bash", Type: Normal, Power: 130, Energy: 75, Buff: &StatBuff{SelfDefense: 1}, BuffChance: 100},
	{ID: 303, Name: "Acid Spray", Type: Poison, Power: 20, Energy: 45, Buff: &StatBuff{OpponentDefense: -2}, BuffChance: 100},
	{ID: 304, Name: "Earth Power", Type: Ground, Power: 90, Energy: 55, Buff: &StatBuff{OpponentDefense: -1}, BuffChance: 10},
	{ID: 305, Name: "Crabhammer", Type: Water, Power: 85, Energy: 50, Buff: &StatBuff{SelfAttack: 2}, BuffChance: 12.5},
	{ID: 306, Name: "Lunge", Type: Bug, Power: 60, Energy: 45, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 100},
	{ID: 308, Name: "Octazooka", Type: Water, Power: 50, Energy: 50, Buff: &StatBuff{OpponentAttack: -2}, BuffChance: 50},
	{ID: 309, Name: "Mirror Shot", Type: Steel, Power: 35, Energy: 35, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 30},
	{ID: 310, Name: "Superpower", Type: Fighting, Power: 85, Energy: 40, Buff: &StatBuff{SelfAttack: -1, SelfDefense: -1}, BuffChance: 100},
	{ID: 311, Name: "Fell Stinger", Type: Bug, Power: 20, Energy: 35, Buff: &StatBuff{SelfAttack: 1}, BuffChance: 100},
	{ID: 312, Name: "Leaf Tornado", Type: Grass, Power: 45, Energy: 40, Buff: &StatBuff{OpponentAttack: -2}, BuffChance: 50},
	{ID: 314, Name: "Drain Punch", Type: Fighting, Power: 20, Energy: 40, Buff: &StatBuff{SelfDefense: 1}, BuffChance: 100},
	{ID: 315, Name: "Shadow Bone", Type: Ghost, Power: 75, Energy: 45, Buff: &StatBuff{OpponentDefense: -1}, BuffChance: 20},
	{ID: 316, Name: "Muddy Water", Type: Water, Power: 35, Energy: 35, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 30},
	{ID: 317, Name: "Blaze Kick", Type: Fire, Power: 55, Energy: 40},
	{ID: 318, Name: "Razor Shell", Type: Water, Power: 35, Energy: 35, Buff: &StatBuff{OpponentDefense: -1}, BuffChance: 50},
	{ID: 319, Name: "Power-Up Punch", Type: Fighting, Power: 20, Energy: 35, Buff: &StatBuff{SelfAttack: 1}, BuffChance: 100},
	{ID: 321, Name: "Giga Impact", Type: Normal, Power: 150, Energy: 80},
	{ID: 322, Name: "Frustration", Type: Normal, Power: 10, Energy: 70},
	{ID: 323, Name: "Return", Type: Normal, Power: 130, Energy: 70},
	{ID: 324, Name: "Synchronoise", Type: Psychic, Power: 80, Energy: 50},
	{ID: 330, Name: "Sacred Sword", Type: Fighting, Power: 60, Energy: 35},
	{ID: 331, Name: "Flying Press", Type: Fighting, Power: 90, Energy: 40},
	{ID: 332, Name: "Aura Sphere", Type: Fighting, Power: 100, Energy: 55},
	{ID: 333, Name: "Payback", Type: Dark, Power: 110, Energy: 60},
	{ID: 334, Name: "Rock Wrecker", Type: Rock, Power: 110, Energy: 50},
	{ID: 335, Name: "Aeroblast", Type: Flying, Power: 170, Energy: 75, Buff: &StatBuff{SelfAttack: 2}, BuffChance: 12.5},
	{ID: 336, Name: "Techno Blast Normal", Type: Normal, Power: 120, Energy: 55},
	{ID: 337, Name: "Techno Blast Burn", Type: Fire, Power: 120, Energy: 55},
	{ID: 338, Name: "Techno Blast Chill", Type: Ice, Power: 120, Energy: 55},
	{ID: 339, Name: "Techno Blast Water", Type: Water, Power: 120, Energy: 55},
	{ID: 340, Name: "Techno Blast Shock", Type: Electric, Power: 120, Energy: 55},
	{ID: 341, Name: "Fly", Type: Flying, Power: 80, Energy: 45},
	{ID: 342, Name: "V-create", Type: Fire, Power: 95, Energy: 40, Buff: &StatBuff{SelfDefense: -3}, BuffChance: 100},
	{ID: 343, Name: "Leaf Storm", Type: Grass, Power: 130, Energy: 55, Buff: &StatBuff{SelfAttack: -2}, BuffChance: 100},
	{ID: 344, Name: "Tri Attack", Type: Normal, Power: 65, Energy: 50, Buff: &StatBuff{OpponentAttack: -1, OpponentDefense: -1}, BuffChance: 50},
	{ID: 348, Name: "Feather Dance", Type: Flying, Power: 35, Energy: 50, Buff: &StatBuff{OpponentAttack: -2}, BuffChance: 100},
	{ID: 352, Name: "Weather Ball Normal", Type: Normal, Power: 55, Energy: 35},
	{ID: 353, Name: "Psychic Fangs", Type: Psychic, Power: 40, Energy: 35, Buff: &StatBuff{OpponentDefense: -1}, BuffChance: 100},
	{ID: 358, Name: "Sacred Fire", Type: Fire, Power: 130, Energy: 65, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 50},
	{ID: 359, Name: "Icicle Spear", Type: Ice, Power: 65, Energy: 40},
	{ID: 360, Name: "Aeroblast+", Type: Flying, Power: 170, Energy: 75, Buff: &StatBuff{SelfAttack: 2}, BuffChance: 12.5, Clone: true},
	{ID: 361, Name: "Aeroblast++", Type: Flying, Power: 170, Energy: 75, Buff: &StatBuff{SelfAttack: 2}, BuffChance: 12.5, Clone: true},
	{ID: 362, Name: "Sacred Fire+", Type: Fire, Power: 130, Energy: 65, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 50, Clone: true},
	{ID: 363, Name: "Sacred Fire++", Type: Fire, Power: 130, Energy: 65, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 50, Clone: true},
	{ID: 364, Name: "Acrobatics", Type: Flying, Power: 110, Energy: 60},
	{ID: 365, Name: "Luster Purge", Type: Psychic, Power: 120, Energy: 60, Buff: &StatBuff{OpponentDefense: -1}, BuffChance: 50},
	{ID: 366, Name: "Mist Ball", Type: Psychic, Power: 120, Energy: 60, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 50},
	{ID: 367, Name: "Brutal Swing", Type: Dark, Power: 65, Energy: 40},
	{ID: 369, Name: "Seed Flare", Type: Grass, Power: 130, Energy: 75, Buff: &StatBuff{OpponentDefense: -2}, BuffChance: 40},
	{ID: 370, Name: "Obstruct", Type: Dark, Power: 15, Energy: 40, Buff: &StatBuff{SelfDefense: 1, OpponentDefense: -1}, BuffChance: 100},
	{ID: 371, Name: "Shadow Force", Type: Ghost, Power: 120, Energy: 90},
	{ID: 372, Name: "Meteor Beam", Type: Rock, Power: 120, Energy: 60, Buff: &StatBuff{SelfAttack: 1}, BuffChance: 100},
	{ID: 374, Name: "Fusion Bolt", Type: Electric, Power: 90, Energy: 45},
	{ID: 375, Name: "Fusion Flare", Type: Fire, Power: 90, Energy: 45},
	{ID: 376, Name: "Poltergeist", Type: Ghost, Power: 150, Energy: 75},
	{ID: 377, Name: "High Horsepower", Type: Ground, Power: 100, Energy: 60},
	{ID: 378, Name: "Glaciate", Type: Ice, Power: 60, Energy: 40, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 100},
	{ID: 379, Name: "Breaking Swipe", Type: Dragon, Power: 50, Energy: 35, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 100},
	{ID: 380, Name: "Boomburst", Type: Normal, Power: 150, Energy: 70},
	{ID: 381, Name: "Double Iron Bash", Type: Steel, Power: 50, Energy: 35},
	{ID: 382, Name: "Mystical Fire", Type: Fire, Power: 60, Energy: 45, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 100},
	{ID: 383, Name: "Liquidation", Type: Water, Power: 70, Energy: 45, Buff: &StatBuff{OpponentDefense: -1}, BuffChance: 30},
	{ID: 384, Name: "Dragon Ascent", Type: Flying, Power: 150, Energy: 70, Buff: &StatBuff{SelfDefense: -1}, BuffChance: 100},
	{ID: 386, Name: "Magma Storm", Type: Fire, Power: 65, Energy: 40},
	{ID: 389, Name: "Oblivion Wing", Type: Flying, Power: 85, Energy: 50},
	{ID: 391, Name: "Triple Axel", Type: Ice, Power: 60, Energy: 45, Buff: &StatBuff{SelfAttack: 1}, BuffChance: 100},
	{ID: 392, Name: "Trailblaze", Type: Grass, Power: 65, Energy: 50, Buff: &StatBuff{SelfAttack: 1}, BuffChance: 100},
	{ID: 393, Name: "Scorching Sands", Type: Ground, Power: 80, Energy: 50, Buff: &StatBuff{OpponentAttack: -1}, BuffChance: 30},
}

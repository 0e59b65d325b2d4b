package data

var speciesDefs = []Species{
	{ID: 1, Name: "Bulbasaur", Types: []Type{Grass, Poison}, Attack: 118, Defense: 111, Stamina: 128,
		FastMoves: []int{214, 221}, ChargeMoves: []int{90, 59, 118}},
	{ID: 3, Name: "Venusaur", Types: []Type{Grass, Poison}, Attack: 198, Defense: 189, Stamina: 190,
		FastMoves: []int{214, 215}, ChargeMoves: []int{296, 90, 47, 116}},
	{ID: 6, Name: "Charizard", Types: []Type{Fire, Flying}, Attack: 223, Defense: 173, Stamina: 186,
		FastMoves: []int{269, 255, 209, 210, 204}, ChargeMoves: []int{298, 83, 24, 103, 270}},
	{ID: 9, Name: "Blastoise", Types: []Type{Water}, Attack: 171, Defense: 207, Stamina: 188,
		FastMoves: []int{230, 202}, ChargeMoves: []int{299, 39, 302, 36, 107}},
	{ID: 25, Name: "Pikachu", Types: []Type{Electric}, Attack: 112, Defense: 96, Stamina: 111,
		FastMoves: []int{205, 219}, ChargeMoves: []int{35, 79, 251, 284}},
	{ID: 26, Name: "Raichu", Types: []Type{Electric}, Attack: 193, Defense: 151, Stamina: 155,
		FastMoves: []int{250, 206, 205}, ChargeMoves: []int{251, 123, 77, 78}},
	{ID: 36, Name: "Clefable", Types: []Type{Fairy}, Attack: 178, Defense: 162, Stamina: 216,
		FastMoves: []int{320, 350, 234}, ChargeMoves: []int{87, 86, 108, 301}},
	{ID: 68, Name: "Machamp", Types: []Type{Fighting}, Attack: 234, Defense: 159, Stamina: 207,
		FastMoves: []int{243, 208, 229}, ChargeMoves: []int{28, 245, 64, 246, 268}},
	{ID: 94, Name: "Gengar", Types: []Type{Ghost, Poison}, Attack: 261, Defense: 149, Stamina: 155,
		FastMoves: []int{213, 264, 212, 203}, ChargeMoves: []int{70, 67, 90, 247}},
	{ID: 129, Name: "Magikarp", Types: []Type{Water}, Attack: 29, Defense: 85, Stamina: 85,
		FastMoves: []int{231}, ChargeMoves: []int{133}},
	{ID: 130, Name: "Gyarados", Types: []Type{Water, Flying}, Attack: 237, Defense: 186, Stamina: 216,
		FastMoves: []int{204, 283, 202}, ChargeMoves: []int{58, 279, 277, 80, 107}},
	{ID: 131, Name: "Lapras", Types: []Type{Water, Ice}, Attack: 165, Defense: 174, Stamina: 277,
		FastMoves: []int{217, 230, 218}, ChargeMoves: []int{284, 302, 39, 40, 107}},
	{ID: 143, Name: "Snorlax", Types: []Type{Normal}, Attack: 190, Defense: 169, Stamina: 330,
		FastMoves: []int{212, 234}, ChargeMoves: []int{131, 310, 31, 14, 277}},
	{ID: 149, Name: "Dragonite", Types: []Type{Dragon, Flying}, Attack: 263, Defense: 198, Stamina: 209,
		FastMoves: []int{204, 253, 239}, ChargeMoves: []int{83, 122, 310, 277, 285}},
	{ID: 150, Name: "Mewtwo", Types: []Type{Psychic}, Attack: 300, Defense: 182, Stamina: 214,
		FastMoves: []int{226, 235}, ChargeMoves: []int{109, 70, 39, 24, 79, 247}},
	{ID: 154, Name: "Meganium", Types: []Type{Grass}, Attack: 148, Defense: 191, Stamina: 190,
		FastMoves: []int{214, 215, 357}, ChargeMoves: []int{296, 31, 47, 116}},
	{ID: 182, Name: "Bellossom", Types: []Type{Grass}, Attack: 169, Defense: 186, Stamina: 181,
		FastMoves: []int{357, 215, 225}, ChargeMoves: []int{117, 86, 47}},
	{ID: 184, Name: "Azumarill", Types: []Type{Water, Fairy}, Attack: 112, Defense: 152, Stamina: 225,
		FastMoves: []int{237, 241}, ChargeMoves: []int{39, 88, 107}},
	{ID: 197, Name: "Umbreon", Types: []Type{Dark}, Attack: 126, Defense: 240, Stamina: 216,
		FastMoves: []int{278, 238}, ChargeMoves: []int{280, 16, 108, 300}},
	{ID: 212, Name: "Scizor", Types: []Type{Bug, Steel}, Attack: 236, Defense: 181, Stamina: 172,
		FastMoves: []int{229, 200}, ChargeMoves: []int{100, 74, 51}},
	{ID: 227, Name: "Skarmory", Types: []Type{Steel, Flying}, Attack: 148, Defense: 226, Stamina: 163,
		FastMoves: []int{255, 239}, ChargeMoves: []int{256, 257, 36}},
	{ID: 242, Name: "Blissey", Types: []Type{Normal}, Attack: 129, Defense: 169, Stamina: 496,
		FastMoves: []int{222, 234}, ChargeMoves: []int{108, 14, 86}},
	{ID: 248, Name: "Tyranitar", Types: []Type{Rock, Dark}, Attack: 251, Defense: 207, Stamina: 225,
		FastMoves: []int{202, 266, 297}, ChargeMoves: []int{279, 32, 103}},
	{ID: 249, Name: "Lugia", Types: []Type{Psychic, Flying}, Attack: 193, Defense: 310, Stamina: 235,
		FastMoves: []int{274, 253}, ChargeMoves: []int{257, 107, 275, 335}},
	{ID: 250, Name: "Ho-Oh", Types: []Type{Fire, Flying}, Attack: 239, Defense: 244, Stamina: 214,
		FastMoves: []int{274, 239, 281, 346}, ChargeMoves: []int{256, 103, 116, 31, 358}},
	{ID: 260, Name: "Swampert", Types: []Type{Water, Ground}, Attack: 208, Defense: 175, Stamina: 225,
		FastMoves: []int{230, 216}, ChargeMoves: []int{299, 31, 91, 284, 316}},
	{ID: 308, Name: "Medicham", Types: []Type{Fighting, Psychic}, Attack: 121, Defense: 152, Stamina: 155,
		FastMoves: []int{226, 243}, ChargeMoves: []int{319, 33, 108, 246}},
	{ID: 334, Name: "Altaria", Types: []Type{Dragon, Flying}, Attack: 141, Defense: 201, Stamina: 181,
		FastMoves: []int{204, 211}, ChargeMoves: []int{257, 86, 82, 87}},
	{ID: 340, Name: "Whiscash", Types: []Type{Water, Ground}, Attack: 151, Defense: 141, Stamina: 242,
		FastMoves: []int{230, 216}, ChargeMoves: []int{96, 40, 105}},
	{ID: 376, Name: "Metagross", Types: []Type{Steel, Psychic}, Attack: 257, Defense: 228, Stamina: 190,
		FastMoves: []int{229, 234}, ChargeMoves: []int{301, 31, 108, 36}},
	{ID: 379, Name: "Registeel", Types: []Type{Steel}, Attack: 143, Defense: 285, Stamina: 190,
		FastMoves: []int{325, 228, 297}, ChargeMoves: []int{247, 252, 14, 36}},
	{ID: 411, Name: "Bastiodon", Types: []Type{Rock, Steel}, Attack: 94, Defense: 286, Stamina: 155,
		FastMoves: []int{297, 266}, ChargeMoves: []int{32, 24, 36}},
	{ID: 445, Name: "Garchomp", Types: []Type{Dragon, Ground}, Attack: 261, Defense: 193, Stamina: 239,
		FastMoves: []int{253, 216}, ChargeMoves: []int{277, 31, 103, 258}},
	{ID: 448, Name: "Lucario", Types: []Type{Fighting, Steel}, Attack: 236, Defense: 144, Stamina: 172,
		FastMoves: []int{243, 229}, ChargeMoves: []int{332, 70, 319, 36, 245}},
	{ID: 468, Name: "Togekiss", Types: []Type{Fairy, Flying}, Attack: 225, Defense: 217, Stamina: 198,
		FastMoves: []int{255, 320, 281}, ChargeMoves: []int{62, 86, 45, 24}},
	{ID: 483, Name: "Dialga", Types: []Type{Steel, Dragon}, Attack: 275, Defense: 211, Stamina: 205,
		FastMoves: []int{204, 228}, ChargeMoves: []int{285, 74, 78}},
	{ID: 487, Name: "Giratina", Types: []Type{Ghost, Dragon}, Attack: 187, Defense: 225, Stamina: 284,
		FastMoves: []int{204, 213}, ChargeMoves: []int{83, 62, 66}},
	{ID: 488, Name: "Cresselia", Types: []Type{Psychic}, Attack: 152, Defense: 258, Stamina: 260,
		FastMoves: []int{226, 235}, ChargeMoves: []int{87, 275, 248, 272}},
	{ID: 528, Name: "Swoobat", Types: []Type{Psychic, Flying}, Attack: 161, Defense: 119, Stamina: 167,
		FastMoves: []int{255, 235}, ChargeMoves: []int{353, 45, 275}},
	{ID: 596, Name: "Galvantula", Types: []Type{Bug, Electric}, Attack: 201, Defense: 128, Stamina: 155,
		FastMoves: []int{250, 200}, ChargeMoves: []int{35, 49, 273, 306}},
	{ID: 618, Name: "Stunfisk", Types: []Type{Ground, Electric}, Attack: 144, Defense: 171, Stamina: 240,
		FastMoves: []int{205, 216}, ChargeMoves: []int{96, 35, 316}},
	{ID: 635, Name: "Hydreigon", Types: []Type{Dark, Dragon}, Attack: 256, Defense: 188, Stamina: 211,
		FastMoves: []int{204, 202}, ChargeMoves: []int{16, 82, 36, 367}},
	{ID: 660, Name: "Diggersby", Types: []Type{Normal, Ground}, Attack: 112, Defense: 155, Stamina: 198,
		FastMoves: []int{219, 216}, ChargeMoves: []int{31, 14, 115}},
	{ID: 709, Name: "Trevenant", Types: []Type{Ghost, Grass}, Attack: 201, Defense: 154, Stamina: 198,
		FastMoves: []int{213, 203}, ChargeMoves: []int{280, 70, 59}},
}

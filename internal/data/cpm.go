package data

import "fmt"

// MinLevel and MaxLevel bound the level a trainer can power a creature up to.
const (
	MinLevel = 1.0
	MaxLevel = 50.0

	// maxTableLevel is the highest level with a known multiplier (best buddy boost).
	maxTableLevel = 51.0
)

// levelMultipliers holds the combat power multiplier per half level.
// Index = (level-1)*2, level 1.0..51.0.
var levelMultipliers = [101]float64{
	0.0939999967, // 1.0
	0.1351374320, // 1.5
	0.1663978695, // 2.0
	0.1926509131, // 2.5
	0.2157324701, // 3.0
	0.2365726514, // 3.5
	0.2557200491, // 4.0
	0.2735303721, // 4.5
	0.2902498841, // 5.0
	0.3060573813, // 5.5
	0.3210875988, // 6.0
	0.3354450319, // 6.5
	0.3492126762, // 7.0
	0.3624577366, // 7.5
	0.3752355873, // 8.0
	0.3875924077, // 8.5
	0.3995672762, // 9.0
	0.4111935532, // 9.5
	0.4225000143, // 10.0
	0.4329264205, // 10.5
	0.4431075453, // 11.0
	0.4530599481, // 11.5
	0.4627983868, // 12.0
	0.4723360853, // 12.5
	0.4816849529, // 13.0
	0.4908558071, // 13.5
	0.4998584389, // 14.0
	0.5087017489, // 14.5
	0.5173939466, // 15.0
	0.5259425161, // 15.5
	0.5343543291, // 16.0
	0.5426357538, // 16.5
	0.5507926940, // 17.0
	0.5588305844, // 17.5
	0.5667545199, // 18.0
	0.5745691281, // 18.5
	0.5822789072, // 19.0
	0.5898879078, // 19.5
	0.5974000096, // 20.0
	0.6048236486, // 20.5
	0.6121572852, // 21.0
	0.6194041079, // 21.5
	0.6265671253, // 22.0
	0.6336491787, // 22.5
	0.6406529545, // 23.0
	0.6475809713, // 23.5
	0.6544356346, // 24.0
	0.6612192658, // 24.5
	0.6679340004, // 25.0
	0.6745818856, // 25.5
	0.6811649203, // 26.0
	0.6876849012, // 26.5
	0.6941436529, // 27.0
	0.7005429010, // 27.5
	0.7068842053, // 28.0
	0.7131690748, // 28.5
	0.7193990945, // 29.0
	0.7255755869, // 29.5
	0.7317000031, // 30.0
	0.7347410385, // 30.5
	0.7377694845, // 31.0
	0.7407855797, // 31.5
	0.7437894344, // 32.0
	0.7467811972, // 32.5
	0.7497610449, // 33.0
	0.7527290997, // 33.5
	0.7556855082, // 34.0
	0.7586303702, // 34.5
	0.7615638375, // 35.0
	0.7644860495, // 35.5
	0.7673971652, // 36.0
	0.7702972936, // 36.5
	0.7731865048, // 37.0
	0.7760649470, // 37.5
	0.7789327502, // 38.0
	0.7817900507, // 38.5
	0.7846369743, // 39.0
	0.7874736085, // 39.5
	0.7903000116, // 40.0
	0.792803968, // 40.5
	0.7953000068, // 41.0
	0.797800015, // 41.5
	0.8003000020, // 42.0
	0.802799995, // 42.5
	0.8052999973, // 43.0
	0.8078, // 43.5
	0.8102999925, // 44.0
	0.812799985, // 44.5
	0.8152999877, // 45.0
	0.81779999, // 45.5
	0.8202999830, // 46.0
	0.82279999, // 46.5
	0.8252999782, // 47.0
	0.82779999, // 47.5
	0.8302999734, // 48.0
	0.83279999, // 48.5
	0.8353000283, // 49.0
	0.83779999, // 49.5
	0.84029999, // 50.0
	0.84279999, // 50.5
	0.84529999, // 51.0
}

// LevelMultiplier returns the stat multiplier for level.
// Panics if level is outside [1.0, 51.0] or not a half step; callers validate levels on input.
func LevelMultiplier(level float64) float64 {
	if level < MinLevel || level > maxTableLevel {
		panic(fmt.Sprintf("data: level %.1f out of range [%.1f, %.1f]", level, MinLevel, maxTableLevel))
	}
	i := int((level - 1) * 2)
	return levelMultipliers[i]
}

// Levels returns every half level from MinLevel to max inclusive.
func Levels(max float64) []float64 {
	if max > maxTableLevel {
		max = maxTableLevel
	}
	n := int((max-MinLevel)*2) + 1
	if n <= 0 {
		return nil
	}
	levels := make([]float64, n)
	for i := range levels {
		levels[i] = MinLevel + float64(i)/2
	}
	return levels
}

// IsValidLevel reports whether level lies on the half-level grid within [MinLevel, MaxLevel].
func IsValidLevel(level float64) bool {
	if level < MinLevel || level > MaxLevel {
		return false
	}
	doubled := level * 2
	return doubled == float64(int(doubled))
}

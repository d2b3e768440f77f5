package store

// Closed vote enumerations, one per personality system.

var mbtiVotes = map[string]struct{}{
	"INFP": {}, "INFJ": {}, "ENFP": {}, "ENFJ": {},
	"INTJ": {}, "INTP": {}, "ENTP": {}, "ENTJ": {},
	"ISFP": {}, "ISFJ": {}, "ESFP": {}, "ESFJ": {},
	"ISTP": {}, "ISTJ": {}, "ESTP": {}, "ESTJ": {},
}

var enneagramVotes = map[string]struct{}{
	"1w2": {}, "1w9": {}, "2w1": {}, "2w3": {}, "3w2": {}, "3w4": {},
	"4w3": {}, "4w5": {}, "5w4": {}, "5w6": {}, "6w5": {}, "6w7": {},
	"7w6": {}, "7w8": {}, "8w7": {}, "8w9": {}, "9w1": {}, "9w8": {},
}

var zodiacVotes = map[string]struct{}{
	"Aries": {}, "Taurus": {}, "Gemini": {}, "Cancer": {},
	"Leo": {}, "Virgo": {}, "Libra": {}, "Scorpio": {},
	"Sagittarius": {}, "Capricorn": {}, "Aquarius": {}, "Pisces": {},
}

// ValidVoteMBTI reports whether v is a legal voteMBTI value.
// The empty string (no vote) is always legal.
func ValidVoteMBTI(v string) bool {
	if v == "" {
		return true
	}
	_, ok := mbtiVotes[v]
	return ok
}

func ValidVoteEnneagram(v string) bool {
	if v == "" {
		return true
	}
	_, ok := enneagramVotes[v]
	return ok
}

func ValidVoteZodiac(v string) bool {
	if v == "" {
		return true
	}
	_, ok := zodiacVotes[v]
	return ok
}

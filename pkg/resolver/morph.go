package resolver

// morphSuits maps the first character of a morph code to a suit index.
var morphSuits = map[byte]int{
	'b': 0, '1': 0,
	'g': 1, '2': 1,
	'y': 2, '3': 2,
	'r': 3, '4': 3,
	'p': 4, '5': 4,
	'k': 5, 'm': 5, '6': 5,
}

// DecodeMorph parses a two character morph code such as "b1" or "65" into a suit
// index and a rank. ok is false for anything else.
func DecodeMorph(code string) (suit, rank int, ok bool) {
	if len(code) != 2 {
		return 0, 0, false
	}
	suit, ok = morphSuits[code[0]]
	if !ok {
		return 0, 0, false
	}
	if code[1] < '0' || code[1] > '9' {
		return 0, 0, false
	}
	return suit, int(code[1] - '0'), true
}

package power

import "golang.org/x/exp/slices"

// Token is a single glyph from the Nerd Font battery ramp.
type Token rune

const (
	Ten     Token = '\U000F007A'
	Twenty  Token = '\U000F007B'
	Thirty  Token = '\U000F007C'
	Forty   Token = '\U000F007D'
	Fifty   Token = '\U000F007E'
	Sixty   Token = '\U000F007F'
	Seventy Token = '\U000F0080'
	Eighty  Token = '\U000F0081'
	Ninety  Token = '\U000F0082'
	Hundred Token = '\U000F0079'
)

func (t Token) String() string {
	return string(rune(t))
}

type bucket struct {
	upper uint8
	token Token
}

// ramp is ordered by upper bound; bounds are inclusive.
var ramp = []bucket{
	{10, Ten},
	{20, Twenty},
	{30, Thirty},
	{40, Forty},
	{50, Fifty},
	{60, Sixty},
	{70, Seventy},
	{80, Eighty},
	{90, Ninety},
}

// Render maps a charge percentage to its glyph. Everything above 90,
// including values over 100, is Hundred.
func Render(percentage uint8) Token {
	i := slices.IndexFunc(ramp, func(b bucket) bool {
		return percentage <= b.upper
	})
	if i == -1 {
		return Hundred
	}
	return ramp[i].token
}

// Tokens lists the ramp from empty to full.
func Tokens() []Token {
	tokens := make([]Token, 0, len(ramp)+1)
	for _, b := range ramp {
		tokens = append(tokens, b.token)
	}
	return append(tokens, Hundred)
}

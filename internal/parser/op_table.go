package parser

import (
	"vb6parse/internal/syntax"
	"vb6parse/internal/token"
)

// Таблица приоритетов для бинарных операторов
// Чем больше число, тем выше приоритет
const (
	precImp            = 1  // Imp
	precEqv            = 2  // Eqv
	precXor            = 3  // Xor
	precOr             = 4  // Or
	precAnd            = 5  // And
	precRelational     = 6  // = <> < <= > >= Is Like
	precConcat         = 7  // &
	precAdditive       = 8  // + -
	precMultiplicative = 9  // * / \ Mod
	precUnary          = 10 // - Not
	precPower          = 11 // ^
)

// binaryOp возвращает приоритет, правую ассоциативность и вид токена
// оператора. Словесные операторы (And, Mod, Like...) приходят из лексера
// как Identifier и перетегируются здесь. prec < 0: не бинарный оператор.
func binaryOp(t token.Token) (prec int, rightAssoc bool, kind syntax.Kind) {
	switch t.Kind {
	case syntax.Caret:
		return precPower, true, t.Kind
	case syntax.Star, syntax.Slash, syntax.Backslash:
		return precMultiplicative, false, t.Kind
	case syntax.Plus, syntax.Minus:
		return precAdditive, false, t.Kind
	case syntax.Ampersand:
		return precConcat, false, t.Kind
	case syntax.Equal, syntax.NotEqual, syntax.Less, syntax.LessEqual, syntax.Greater, syntax.GreaterEqual:
		return precRelational, false, t.Kind
	case syntax.Identifier:
		k, _ := token.LookupKeyword(t.Text)
		switch k {
		case syntax.ModKeyword:
			return precMultiplicative, false, k
		case syntax.IsKeyword, syntax.LikeKeyword:
			return precRelational, false, k
		case syntax.AndKeyword:
			return precAnd, false, k
		case syntax.OrKeyword:
			return precOr, false, k
		case syntax.XorKeyword:
			return precXor, false, k
		case syntax.EqvKeyword:
			return precEqv, false, k
		case syntax.ImpKeyword:
			return precImp, false, k
		}
	}
	return -1, false, syntax.Invalid
}

// isRelationalOp: операторы, допустимые после Case Is.
func isRelationalOp(k syntax.Kind) bool {
	switch k {
	case syntax.Equal, syntax.NotEqual, syntax.Less, syntax.LessEqual, syntax.Greater, syntax.GreaterEqual:
		return true
	}
	return false
}

package token

import "vb6parse/internal/syntax"

// reserved keywords never name a variable or procedure. An expression cannot start
// with one, and an unparenthesized argument list stops in front of one.
var reserved = map[syntax.Kind]bool{
	syntax.AndKeyword: true, syntax.AsKeyword: true, syntax.ByRefKeyword: true, syntax.ByValKeyword: true,
	syntax.CallKeyword: true, syntax.CaseKeyword: true, syntax.ConstKeyword: true, syntax.DeclareKeyword: true,
	syntax.DimKeyword: true, syntax.DoKeyword: true, syntax.EachKeyword: true, syntax.ElseKeyword: true,
	syntax.ElseIfKeyword: true, syntax.EndKeyword: true, syntax.EnumKeyword: true, syntax.EqvKeyword: true,
	syntax.EraseKeyword: true, syntax.EventKeyword: true, syntax.ExitKeyword: true, syntax.ForKeyword: true,
	syntax.FriendKeyword: true, syntax.FunctionKeyword: true, syntax.GlobalKeyword: true, syntax.GoSubKeyword: true,
	syntax.GoToKeyword: true, syntax.IfKeyword: true, syntax.ImpKeyword: true, syntax.ImplementsKeyword: true,
	syntax.InKeyword: true, syntax.IsKeyword: true, syntax.LetKeyword: true, syntax.LikeKeyword: true,
	syntax.LoopKeyword: true, syntax.ModKeyword: true, syntax.NextKeyword: true, syntax.OnKeyword: true,
	syntax.OptionKeyword: true, syntax.OptionalKeyword: true, syntax.OrKeyword: true, syntax.ParamArrayKeyword: true,
	syntax.PreserveKeyword: true, syntax.PrivateKeyword: true, syntax.PropertyKeyword: true, syntax.PublicKeyword: true,
	syntax.RaiseEventKeyword: true, syntax.ReDimKeyword: true, syntax.RemKeyword: true, syntax.ResumeKeyword: true,
	syntax.ReturnKeyword: true, syntax.SelectKeyword: true, syntax.SetKeyword: true, syntax.StaticKeyword: true,
	syntax.SubKeyword: true, syntax.ThenKeyword: true, syntax.ToKeyword: true, syntax.UntilKeyword: true,
	syntax.WendKeyword: true, syntax.WhileKeyword: true, syntax.WithKeyword: true, syntax.WithEventsKeyword: true,
	syntax.XorKeyword: true,
}

// IsReserved reports whether word is a reserved keyword (see reserved).
// Soft keywords such as Name, Width, Text, Line, Step and Type are not reserved.
func IsReserved(word string) bool {
	k, ok := LookupKeyword(word)
	return ok && reserved[k]
}

var typeNames = map[syntax.Kind]bool{
	syntax.AnyKeyword: true, syntax.BooleanKeyword: true, syntax.ByteKeyword: true,
	syntax.CurrencyKeyword: true, syntax.DateKeyword: true, syntax.DecimalKeyword: true,
	syntax.DoubleKeyword: true, syntax.IntegerKeyword: true, syntax.LongKeyword: true,
	syntax.ObjectKeyword: true, syntax.SingleKeyword: true, syntax.StringKeyword: true,
	syntax.VariantKeyword: true,
}

// TypeKeyword returns the built-in type keyword spelled by word, if any.
func TypeKeyword(word string) (syntax.Kind, bool) {
	k, ok := LookupKeyword(word)
	if !ok || !typeNames[k] {
		return syntax.Invalid, false
	}
	return k, true
}

var defTypes = map[syntax.Kind]bool{
	syntax.DefBoolKeyword: true, syntax.DefByteKeyword: true, syntax.DefCurKeyword: true,
	syntax.DefDateKeyword: true, syntax.DefDblKeyword: true, syntax.DefDecKeyword: true,
	syntax.DefIntKeyword: true, syntax.DefLngKeyword: true, syntax.DefObjKeyword: true,
	syntax.DefSngKeyword: true, syntax.DefStrKeyword: true, syntax.DefVarKeyword: true,
}

// DefTypeKeyword returns the DefXxx keyword spelled by word, if any.
func DefTypeKeyword(word string) (syntax.Kind, bool) {
	k, ok := LookupKeyword(word)
	if !ok || !defTypes[k] {
		return syntax.Invalid, false
	}
	return k, true
}

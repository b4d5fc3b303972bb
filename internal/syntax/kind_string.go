package syntax

import "strconv"

var kindNames = [...]string{
	Invalid: "Invalid",
	Unknown: "Unknown",
	EOF:     "EOF",

	Whitespace:       "Whitespace",
	Newline:          "Newline",
	Comment:          "Comment",
	RemComment:       "RemComment",
	LineContinuation: "LineContinuation",
	Identifier:       "Identifier",
	StringLiteral:    "StringLiteral",
	IntegerLiteral:   "IntegerLiteral",
	LongLiteral:      "LongLiteral",
	SingleLiteral:    "SingleLiteral",
	DoubleLiteral:    "DoubleLiteral",
	CurrencyLiteral:  "CurrencyLiteral",
	DateLiteral:      "DateLiteral",

	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	Comma:        "Comma",
	Semicolon:    "Semicolon",
	Colon:        "Colon",
	ColonEqual:   "ColonEqual",
	Period:       "Period",
	Bang:         "Bang",
	Hash:         "Hash",
	Dollar:       "Dollar",
	Percent:      "Percent",
	At:           "At",
	Underscore:   "Underscore",
	Ampersand:    "Ampersand",
	Plus:         "Plus",
	Minus:        "Minus",
	Star:         "Star",
	Slash:        "Slash",
	Backslash:    "Backslash",
	Caret:        "Caret",
	Equal:        "Equal",
	NotEqual:     "NotEqual",
	Less:         "Less",
	LessEqual:    "LessEqual",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",

	AccessKeyword:        "AccessKeyword",
	AddressOfKeyword:     "AddressOfKeyword",
	AliasKeyword:         "AliasKeyword",
	AndKeyword:           "AndKeyword",
	AnyKeyword:           "AnyKeyword",
	AppActivateKeyword:   "AppActivateKeyword",
	AppendKeyword:        "AppendKeyword",
	AsKeyword:            "AsKeyword",
	AttributeKeyword:     "AttributeKeyword",
	BaseKeyword:          "BaseKeyword",
	BeepKeyword:          "BeepKeyword",
	BeginKeyword:         "BeginKeyword",
	BeginPropertyKeyword: "BeginPropertyKeyword",
	BinaryKeyword:        "BinaryKeyword",
	BooleanKeyword:       "BooleanKeyword",
	ByRefKeyword:         "ByRefKeyword",
	ByteKeyword:          "ByteKeyword",
	ByValKeyword:         "ByValKeyword",
	CallKeyword:          "CallKeyword",
	CaseKeyword:          "CaseKeyword",
	ChDirKeyword:         "ChDirKeyword",
	ChDriveKeyword:       "ChDriveKeyword",
	CloseKeyword:         "CloseKeyword",
	CompareKeyword:       "CompareKeyword",
	ConstKeyword:         "ConstKeyword",
	CurrencyKeyword:      "CurrencyKeyword",
	DatabaseKeyword:      "DatabaseKeyword",
	DateKeyword:          "DateKeyword",
	DecimalKeyword:       "DecimalKeyword",
	DeclareKeyword:       "DeclareKeyword",
	DefBoolKeyword:       "DefBoolKeyword",
	DefByteKeyword:       "DefByteKeyword",
	DefCurKeyword:        "DefCurKeyword",
	DefDateKeyword:       "DefDateKeyword",
	DefDblKeyword:        "DefDblKeyword",
	DefDecKeyword:        "DefDecKeyword",
	DefIntKeyword:        "DefIntKeyword",
	DefLngKeyword:        "DefLngKeyword",
	DefObjKeyword:        "DefObjKeyword",
	DefSngKeyword:        "DefSngKeyword",
	DefStrKeyword:        "DefStrKeyword",
	DefVarKeyword:        "DefVarKeyword",
	DeleteSettingKeyword: "DeleteSettingKeyword",
	DimKeyword:           "DimKeyword",
	DoKeyword:            "DoKeyword",
	DoubleKeyword:        "DoubleKeyword",
	EachKeyword:          "EachKeyword",
	ElseKeyword:          "ElseKeyword",
	ElseIfKeyword:        "ElseIfKeyword",
	EmptyKeyword:         "EmptyKeyword",
	EndKeyword:           "EndKeyword",
	EndPropertyKeyword:   "EndPropertyKeyword",
	EnumKeyword:          "EnumKeyword",
	EqvKeyword:           "EqvKeyword",
	EraseKeyword:         "EraseKeyword",
	ErrorKeyword:         "ErrorKeyword",
	EventKeyword:         "EventKeyword",
	ExitKeyword:          "ExitKeyword",
	ExplicitKeyword:      "ExplicitKeyword",
	FalseKeyword:         "FalseKeyword",
	FileCopyKeyword:      "FileCopyKeyword",
	ForKeyword:           "ForKeyword",
	FriendKeyword:        "FriendKeyword",
	FunctionKeyword:      "FunctionKeyword",
	GetKeyword:           "GetKeyword",
	GlobalKeyword:        "GlobalKeyword",
	GoSubKeyword:         "GoSubKeyword",
	GoToKeyword:          "GoToKeyword",
	IfKeyword:            "IfKeyword",
	ImpKeyword:           "ImpKeyword",
	ImplementsKeyword:    "ImplementsKeyword",
	InKeyword:            "InKeyword",
	InputKeyword:         "InputKeyword",
	IntegerKeyword:       "IntegerKeyword",
	IsKeyword:            "IsKeyword",
	KillKeyword:          "KillKeyword",
	LenKeyword:           "LenKeyword",
	LetKeyword:           "LetKeyword",
	LibKeyword:           "LibKeyword",
	LikeKeyword:          "LikeKeyword",
	LineKeyword:          "LineKeyword",
	LoadKeyword:          "LoadKeyword",
	LockKeyword:          "LockKeyword",
	LongKeyword:          "LongKeyword",
	LoopKeyword:          "LoopKeyword",
	LSetKeyword:          "LSetKeyword",
	MeKeyword:            "MeKeyword",
	MidKeyword:           "MidKeyword",
	MidBKeyword:          "MidBKeyword",
	MkDirKeyword:         "MkDirKeyword",
	ModKeyword:           "ModKeyword",
	ModuleKeyword:        "ModuleKeyword",
	NameKeyword:          "NameKeyword",
	NewKeyword:           "NewKeyword",
	NextKeyword:          "NextKeyword",
	NotKeyword:           "NotKeyword",
	NothingKeyword:       "NothingKeyword",
	NullKeyword:          "NullKeyword",
	ObjectKeyword:        "ObjectKeyword",
	OnKeyword:            "OnKeyword",
	OpenKeyword:          "OpenKeyword",
	OptionKeyword:        "OptionKeyword",
	OptionalKeyword:      "OptionalKeyword",
	OrKeyword:            "OrKeyword",
	OutputKeyword:        "OutputKeyword",
	ParamArrayKeyword:    "ParamArrayKeyword",
	PreserveKeyword:      "PreserveKeyword",
	PrintKeyword:         "PrintKeyword",
	PrivateKeyword:       "PrivateKeyword",
	PropertyKeyword:      "PropertyKeyword",
	PublicKeyword:        "PublicKeyword",
	PutKeyword:           "PutKeyword",
	RaiseEventKeyword:    "RaiseEventKeyword",
	RandomKeyword:        "RandomKeyword",
	RandomizeKeyword:     "RandomizeKeyword",
	ReadKeyword:          "ReadKeyword",
	ReDimKeyword:         "ReDimKeyword",
	RemKeyword:           "RemKeyword",
	ResetKeyword:         "ResetKeyword",
	ResumeKeyword:        "ResumeKeyword",
	ReturnKeyword:        "ReturnKeyword",
	RmDirKeyword:         "RmDirKeyword",
	RSetKeyword:          "RSetKeyword",
	SavePictureKeyword:   "SavePictureKeyword",
	SaveSettingKeyword:   "SaveSettingKeyword",
	SeekKeyword:          "SeekKeyword",
	SelectKeyword:        "SelectKeyword",
	SendKeysKeyword:      "SendKeysKeyword",
	SetKeyword:           "SetKeyword",
	SetAttrKeyword:       "SetAttrKeyword",
	SharedKeyword:        "SharedKeyword",
	SingleKeyword:        "SingleKeyword",
	SpcKeyword:           "SpcKeyword",
	StaticKeyword:        "StaticKeyword",
	StepKeyword:          "StepKeyword",
	StopKeyword:          "StopKeyword",
	StringKeyword:        "StringKeyword",
	SubKeyword:           "SubKeyword",
	TabKeyword:           "TabKeyword",
	TextKeyword:          "TextKeyword",
	ThenKeyword:          "ThenKeyword",
	TimeKeyword:          "TimeKeyword",
	ToKeyword:            "ToKeyword",
	TrueKeyword:          "TrueKeyword",
	TypeKeyword:          "TypeKeyword",
	TypeOfKeyword:        "TypeOfKeyword",
	UnloadKeyword:        "UnloadKeyword",
	UnlockKeyword:        "UnlockKeyword",
	UntilKeyword:         "UntilKeyword",
	VariantKeyword:       "VariantKeyword",
	VersionKeyword:       "VersionKeyword",
	WendKeyword:          "WendKeyword",
	WhileKeyword:         "WhileKeyword",
	WidthKeyword:         "WidthKeyword",
	WithKeyword:          "WithKeyword",
	WithEventsKeyword:    "WithEventsKeyword",
	WriteKeyword:         "WriteKeyword",
	XorKeyword:           "XorKeyword",

	Root:                     "Root",
	StatementList:            "StatementList",
	VersionStatement:         "VersionStatement",
	PropertiesBlock:          "PropertiesBlock",
	PropertyGroup:            "PropertyGroup",
	PropertyLine:             "PropertyLine",
	ObjectStatement:          "ObjectStatement",
	AttributeStatement:       "AttributeStatement",
	OptionStatement:          "OptionStatement",
	DimStatement:             "DimStatement",
	ReDimStatement:           "ReDimStatement",
	EraseStatement:           "EraseStatement",
	ConstStatement:           "ConstStatement",
	VariableDeclaration:      "VariableDeclaration",
	ConstDeclaration:         "ConstDeclaration",
	ArrayBounds:              "ArrayBounds",
	BoundRange:               "BoundRange",
	TypeClause:               "TypeClause",
	TypeStatement:            "TypeStatement",
	TypeMember:               "TypeMember",
	EnumStatement:            "EnumStatement",
	EnumMember:               "EnumMember",
	DeclareStatement:         "DeclareStatement",
	EventStatement:           "EventStatement",
	ImplementsStatement:      "ImplementsStatement",
	DefTypeStatement:         "DefTypeStatement",
	LetterRange:              "LetterRange",
	SubStatement:             "SubStatement",
	FunctionStatement:        "FunctionStatement",
	PropertyStatement:        "PropertyStatement",
	ParameterList:            "ParameterList",
	Parameter:                "Parameter",
	IfStatement:              "IfStatement",
	ElseIfClause:             "ElseIfClause",
	ElseClause:               "ElseClause",
	SelectCaseStatement:      "SelectCaseStatement",
	CaseClause:               "CaseClause",
	CaseElseClause:           "CaseElseClause",
	CaseIsCondition:          "CaseIsCondition",
	CaseRange:                "CaseRange",
	ForStatement:             "ForStatement",
	ForEachStatement:         "ForEachStatement",
	DoStatement:              "DoStatement",
	WhileStatement:           "WhileStatement",
	WithStatement:            "WithStatement",
	GotoStatement:            "GotoStatement",
	GoSubStatement:           "GoSubStatement",
	ReturnStatement:          "ReturnStatement",
	ResumeStatement:          "ResumeStatement",
	ExitStatement:            "ExitStatement",
	EndStatement:             "EndStatement",
	OnErrorStatement:         "OnErrorStatement",
	OnGoToStatement:          "OnGoToStatement",
	OnGoSubStatement:         "OnGoSubStatement",
	LabelStatement:           "LabelStatement",
	CallStatement:            "CallStatement",
	SetStatement:             "SetStatement",
	LetStatement:             "LetStatement",
	AssignmentStatement:      "AssignmentStatement",
	RaiseEventStatement:      "RaiseEventStatement",
	AppActivateStatement:     "AppActivateStatement",
	BeepStatement:            "BeepStatement",
	ChDirStatement:           "ChDirStatement",
	ChDriveStatement:         "ChDriveStatement",
	CloseStatement:           "CloseStatement",
	DateStatement:            "DateStatement",
	DeleteSettingStatement:   "DeleteSettingStatement",
	ErrorStatement:           "ErrorStatement",
	FileCopyStatement:        "FileCopyStatement",
	GetStatement:             "GetStatement",
	PutStatement:             "PutStatement",
	InputStatement:           "InputStatement",
	LineInputStatement:       "LineInputStatement",
	KillStatement:            "KillStatement",
	LoadStatement:            "LoadStatement",
	UnloadStatement:          "UnloadStatement",
	LockStatement:            "LockStatement",
	UnlockStatement:          "UnlockStatement",
	LSetStatement:            "LSetStatement",
	RSetStatement:            "RSetStatement",
	MidStatement:             "MidStatement",
	MidBStatement:            "MidBStatement",
	MkDirStatement:           "MkDirStatement",
	RmDirStatement:           "RmDirStatement",
	NameStatement:            "NameStatement",
	OpenStatement:            "OpenStatement",
	PrintStatement:           "PrintStatement",
	WriteStatement:           "WriteStatement",
	RandomizeStatement:       "RandomizeStatement",
	ResetStatement:           "ResetStatement",
	SavePictureStatement:     "SavePictureStatement",
	SaveSettingStatement:     "SaveSettingStatement",
	SeekStatement:            "SeekStatement",
	SendKeysStatement:        "SendKeysStatement",
	SetAttrStatement:         "SetAttrStatement",
	StopStatement:            "StopStatement",
	TimeStatement:            "TimeStatement",
	WidthStatement:           "WidthStatement",
	BinaryExpression:         "BinaryExpression",
	UnaryExpression:          "UnaryExpression",
	ParenthesizedExpression:  "ParenthesizedExpression",
	CallExpression:           "CallExpression",
	MemberAccessExpression:   "MemberAccessExpression",
	IdentifierExpression:     "IdentifierExpression",
	NumericLiteralExpression: "NumericLiteralExpression",
	StringLiteralExpression:  "StringLiteralExpression",
	BooleanLiteralExpression: "BooleanLiteralExpression",
	DateLiteralExpression:    "DateLiteralExpression",
	LiteralExpression:        "LiteralExpression",
	NewExpression:            "NewExpression",
	AddressOfExpression:      "AddressOfExpression",
	TypeOfExpression:         "TypeOfExpression",
	ArgumentList:             "ArgumentList",
	Argument:                 "Argument",
}

// String returns the stable name used by debug dumps, e.g. "IfStatement" or "LockKeyword".
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

var kindByName map[string]Kind

func init() {
	kindByName = make(map[string]Kind, len(kindNames))
	for i, name := range kindNames {
		if name != "" {
			kindByName[name] = Kind(i) //nolint:gosec // bounded by the table
		}
	}
}

// KindFromName is the inverse of String. It is used when reading exported trees back.
func KindFromName(name string) (Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

package syntax

// Kind tags every element of a syntax tree. Nodes and tokens share one closed set.
type Kind uint16

const (
	// Invalid is the zero value; it never appears in a tree.
	Invalid Kind = iota
	// Unknown marks an unrecognized character (token) or a malformed region (node).
	Unknown
	// EOF is produced by the lexer once input is exhausted. It is not stored in trees.
	EOF

	triviaBegin
	Whitespace // spaces, tabs, form feeds, BOM
	Newline    // \n, \r\n or a lone \r
	// Comment is an apostrophe comment up to, not including, the line break.
	Comment
	RemComment
	// LineContinuation is "_", optional blanks and the line break it escapes.
	LineContinuation
	triviaEnd

	// Identifier is any word the parser did not request as a keyword.
	Identifier
	literalBegin
	StringLiteral
	IntegerLiteral
	LongLiteral
	SingleLiteral
	DoubleLiteral
	CurrencyLiteral
	DateLiteral
	literalEnd

	punctBegin
	LeftParen    // (
	RightParen   // )
	LeftBrace    // {
	RightBrace   // }
	LeftBracket  // [
	RightBracket // ]
	Comma        // ,
	Semicolon    // ;
	Colon        // :
	ColonEqual   // :=
	Period       // .
	Bang         // !
	Hash         // #
	Dollar       // $
	Percent      // %
	At           // @
	Underscore   // _
	Ampersand    // &
	Plus         // +
	Minus        // -
	Star         // *
	Slash        // /
	Backslash    // \
	Caret        // ^
	Equal        // =
	NotEqual     // <>
	Less         // <
	LessEqual    // <=
	Greater      // >
	GreaterEqual // >=
	punctEnd

	// Keyword kinds are assigned by the parser, never by the lexer.
	keywordBegin
	AccessKeyword
	AddressOfKeyword
	AliasKeyword
	AndKeyword
	AnyKeyword
	AppActivateKeyword
	AppendKeyword
	AsKeyword
	AttributeKeyword
	BaseKeyword
	BeepKeyword
	BeginKeyword
	BeginPropertyKeyword
	BinaryKeyword
	BooleanKeyword
	ByRefKeyword
	ByteKeyword
	ByValKeyword
	CallKeyword
	CaseKeyword
	ChDirKeyword
	ChDriveKeyword
	CloseKeyword
	CompareKeyword
	ConstKeyword
	CurrencyKeyword
	DatabaseKeyword
	DateKeyword
	DecimalKeyword
	DeclareKeyword
	DefBoolKeyword
	DefByteKeyword
	DefCurKeyword
	DefDateKeyword
	DefDblKeyword
	DefDecKeyword
	DefIntKeyword
	DefLngKeyword
	DefObjKeyword
	DefSngKeyword
	DefStrKeyword
	DefVarKeyword
	DeleteSettingKeyword
	DimKeyword
	DoKeyword
	DoubleKeyword
	EachKeyword
	ElseKeyword
	ElseIfKeyword
	EmptyKeyword
	EndKeyword
	EndPropertyKeyword
	EnumKeyword
	EqvKeyword
	EraseKeyword
	ErrorKeyword
	EventKeyword
	ExitKeyword
	ExplicitKeyword
	FalseKeyword
	FileCopyKeyword
	ForKeyword
	FriendKeyword
	FunctionKeyword
	GetKeyword
	GlobalKeyword
	GoSubKeyword
	GoToKeyword
	IfKeyword
	ImpKeyword
	ImplementsKeyword
	InKeyword
	InputKeyword
	IntegerKeyword
	IsKeyword
	KillKeyword
	LenKeyword
	LetKeyword
	LibKeyword
	LikeKeyword
	LineKeyword
	LoadKeyword
	LockKeyword
	LongKeyword
	LoopKeyword
	LSetKeyword
	MeKeyword
	MidKeyword
	MidBKeyword
	MkDirKeyword
	ModKeyword
	ModuleKeyword
	NameKeyword
	NewKeyword
	NextKeyword
	NotKeyword
	NothingKeyword
	NullKeyword
	ObjectKeyword
	OnKeyword
	OpenKeyword
	OptionKeyword
	OptionalKeyword
	OrKeyword
	OutputKeyword
	ParamArrayKeyword
	PreserveKeyword
	PrintKeyword
	PrivateKeyword
	PropertyKeyword
	PublicKeyword
	PutKeyword
	RaiseEventKeyword
	RandomKeyword
	RandomizeKeyword
	ReadKeyword
	ReDimKeyword
	RemKeyword
	ResetKeyword
	ResumeKeyword
	ReturnKeyword
	RmDirKeyword
	RSetKeyword
	SavePictureKeyword
	SaveSettingKeyword
	SeekKeyword
	SelectKeyword
	SendKeysKeyword
	SetKeyword
	SetAttrKeyword
	SharedKeyword
	SingleKeyword
	SpcKeyword
	StaticKeyword
	StepKeyword
	StopKeyword
	StringKeyword
	SubKeyword
	TabKeyword
	TextKeyword
	ThenKeyword
	TimeKeyword
	ToKeyword
	TrueKeyword
	TypeKeyword
	TypeOfKeyword
	UnloadKeyword
	UnlockKeyword
	UntilKeyword
	VariantKeyword
	VersionKeyword
	WendKeyword
	WhileKeyword
	WidthKeyword
	WithKeyword
	WithEventsKeyword
	WriteKeyword
	XorKeyword
	keywordEnd

	nodeBegin
	Root
	// StatementList holds the body of a block: statements plus separating trivia.
	StatementList

	// module header
	VersionStatement
	PropertiesBlock
	PropertyGroup
	PropertyLine
	ObjectStatement
	AttributeStatement
	OptionStatement

	// declarations
	DimStatement
	ReDimStatement
	EraseStatement
	ConstStatement
	VariableDeclaration
	ConstDeclaration
	ArrayBounds
	BoundRange
	TypeClause
	TypeStatement
	TypeMember
	EnumStatement
	EnumMember
	DeclareStatement
	EventStatement
	ImplementsStatement
	DefTypeStatement
	LetterRange

	// procedures
	SubStatement
	FunctionStatement
	PropertyStatement
	ParameterList
	Parameter

	// control flow
	IfStatement
	ElseIfClause
	ElseClause
	SelectCaseStatement
	CaseClause
	CaseElseClause
	CaseIsCondition
	CaseRange
	ForStatement
	ForEachStatement
	DoStatement
	WhileStatement
	WithStatement
	GotoStatement
	GoSubStatement
	ReturnStatement
	ResumeStatement
	ExitStatement
	EndStatement
	OnErrorStatement
	OnGoToStatement
	OnGoSubStatement
	LabelStatement

	CallStatement
	SetStatement
	LetStatement
	AssignmentStatement
	RaiseEventStatement

	// built-in statements
	AppActivateStatement
	BeepStatement
	ChDirStatement
	ChDriveStatement
	CloseStatement
	DateStatement
	DeleteSettingStatement
	ErrorStatement
	FileCopyStatement
	GetStatement
	PutStatement
	InputStatement
	LineInputStatement
	KillStatement
	LoadStatement
	UnloadStatement
	LockStatement
	UnlockStatement
	LSetStatement
	RSetStatement
	MidStatement
	MidBStatement
	MkDirStatement
	RmDirStatement
	NameStatement
	OpenStatement
	PrintStatement
	WriteStatement
	RandomizeStatement
	ResetStatement
	SavePictureStatement
	SaveSettingStatement
	SeekStatement
	SendKeysStatement
	SetAttrStatement
	StopStatement
	TimeStatement
	WidthStatement

	// expressions
	BinaryExpression
	UnaryExpression
	ParenthesizedExpression
	CallExpression
	MemberAccessExpression
	IdentifierExpression
	NumericLiteralExpression
	StringLiteralExpression
	BooleanLiteralExpression
	DateLiteralExpression
	LiteralExpression
	NewExpression
	AddressOfExpression
	TypeOfExpression
	ArgumentList
	Argument
	nodeEnd
)

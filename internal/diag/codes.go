package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexUnterminatedName   Code = 1004 // [escaped name without closing bracket

	// Синтаксические
	SynInfo                Code = 2000
	SynUnexpectedToken     Code = 2001
	SynExpectExpression    Code = 2002
	SynExpectIdentifier    Code = 2003
	SynExpectKeyword       Code = 2004
	SynExpectRightParen    Code = 2005
	SynExpectEquals        Code = 2006
	SynUnclosedBlock       Code = 2007
	SynUnexpectedStatement Code = 2008
	SynUnexpectedBlockEnd  Code = 2009
	SynExpectLineEnd       Code = 2010
	SynTooManyErrors       Code = 2011

	// Ресурсные файлы (.frx)
	ResInfo              Code = 3000
	ResOffsetOutOfBounds Code = 3001
	ResHeaderTruncated   Code = 3002
	ResSizeMismatch      Code = 3003
	ResBadSignature      Code = 3004
	ResCorruptList       Code = 3005
	ResMissingFile       Code = 3006

	// I/O
	IOLoadFileError Code = 4001
	IODecodeError   Code = 4002

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:            "Unknown error",
		LexInfo:                "Lexical information",
		LexUnknownChar:         "Unknown character",
		LexUnterminatedString:  "Unterminated string literal",
		LexBadNumber:           "Malformed numeric literal",
		LexUnterminatedName:    "Unterminated bracketed name",
		SynInfo:                "Syntax information",
		SynUnexpectedToken:     "Unexpected token",
		SynExpectExpression:    "Expected expression",
		SynExpectIdentifier:    "Expected identifier",
		SynExpectKeyword:       "Expected keyword",
		SynExpectRightParen:    "Expected ')'",
		SynExpectEquals:        "Expected '='",
		SynUnclosedBlock:       "Block is not closed before end of input",
		SynUnexpectedStatement: "Statement is not allowed here",
		SynUnexpectedBlockEnd:  "Closing keyword without matching block",
		SynExpectLineEnd:       "Expected end of statement",
		SynTooManyErrors:       "Too many syntax errors",
		ResInfo:                "Resource information",
		ResOffsetOutOfBounds:   "Resource offset out of bounds",
		ResHeaderTruncated:     "Resource header is truncated",
		ResSizeMismatch:        "Resource header sizes disagree",
		ResBadSignature:        "Resource signature not recognised",
		ResCorruptList:         "Resource list payload is corrupt",
		ResMissingFile:         "Resource file not found",
		IOLoadFileError:        "I/O load file error",
		IODecodeError:          "Source decoding error",
		ObsInfo:                "Observability information",
		ObsTimings:             "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("RES%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

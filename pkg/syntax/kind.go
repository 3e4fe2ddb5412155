package syntax

// Kind classifies a node by the syntactic shape whitespace rules care about.
// Host nodes that have no matching shape are KindOther.
type Kind uint8

const (
	KindOther Kind = iota
	KindFile
	KindAnnotation
	KindArrayAccess
	KindArrayType
	KindBitwiseNot
	KindLogicalNot
	KindMemberSelect
	KindMethodReference
	KindArrayInitializer
	KindPrefixIncrement
	KindPrefixDecrement
	KindPostfixIncrement
	KindPostfixDecrement
	KindSynchronized
	KindTypeCast
	KindUnaryPlus
	KindUnaryMinus
	KindLabeledStatement
	KindForStatement
	KindTypeArguments
	KindTypeParameters

	kindCount
)

//nolint:gochecknoglobals // Lookup table for Kind.String.
var kindNames = [kindCount]string{
	KindOther:            "Other",
	KindFile:             "File",
	KindAnnotation:       "Annotation",
	KindArrayAccess:      "ArrayAccess",
	KindArrayType:        "ArrayType",
	KindBitwiseNot:       "BitwiseNot",
	KindLogicalNot:       "LogicalNot",
	KindMemberSelect:     "MemberSelect",
	KindMethodReference:  "MethodReference",
	KindArrayInitializer: "ArrayInitializer",
	KindPrefixIncrement:  "PrefixIncrement",
	KindPrefixDecrement:  "PrefixDecrement",
	KindPostfixIncrement: "PostfixIncrement",
	KindPostfixDecrement: "PostfixDecrement",
	KindSynchronized:     "Synchronized",
	KindTypeCast:         "TypeCast",
	KindUnaryPlus:        "UnaryPlus",
	KindUnaryMinus:       "UnaryMinus",
	KindLabeledStatement: "LabeledStatement",
	KindForStatement:     "ForStatement",
	KindTypeArguments:    "TypeArguments",
	KindTypeParameters:   "TypeParameters",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Role names a significant sub-token of a construct.
type Role uint8

const (
	// RoleAt is the '@' introducing an annotation.
	RoleAt Role = iota + 1
	// RoleOperator is the operator of a unary, prefix or postfix expression.
	RoleOperator
	// RoleSeparator is the '.' of a member select or the '::' of a method reference.
	RoleSeparator
	// RoleOpenBrace is the '{' of an array initializer.
	RoleOpenBrace
	// RoleOpenBracket is the '[' of an array access or array type dimension.
	RoleOpenBracket
	// RoleOpenParen is the '(' of a cast.
	RoleOpenParen
	// RoleCloseParen is the ')' of a cast.
	RoleCloseParen
	// RoleColon is the ':' after a statement label.
	RoleColon
	// RoleFirst is the first token of the construct.
	RoleFirst
)

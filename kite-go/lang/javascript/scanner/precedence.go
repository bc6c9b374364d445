package scanner

// Precedence orders operator binding strength, loosest first.
type Precedence uint8

// Precedence levels
const (
	Lowest Precedence = iota
	CommaPrecedence
	AssignmentPrecedence
	ConditionalPrecedence
	LogicalOrPrecedence
	LogicalAndPrecedence
	BitwiseOrPrecedence
	BitwiseXorPrecedence
	BitwiseAndPrecedence
	EqualityPrecedence
	RelationalPrecedence
	ShiftPrecedence
	AdditivePrecedence
	MultiplicativePrecedence
	UnaryPrecedence
	PostfixPrecedence
	LeftHandSidePrecedence
	CallOrNewPrecedence
	MemberPrecedence
	PrimaryPrecedence
	Highest
)

var precedenceNames = [...]string{
	Lowest:                   "lowest",
	CommaPrecedence:          "comma",
	AssignmentPrecedence:     "assignment",
	ConditionalPrecedence:    "conditional",
	LogicalOrPrecedence:      "logical_or",
	LogicalAndPrecedence:     "logical_and",
	BitwiseOrPrecedence:      "bitwise_or",
	BitwiseXorPrecedence:     "bitwise_xor",
	BitwiseAndPrecedence:     "bitwise_and",
	EqualityPrecedence:       "equality",
	RelationalPrecedence:     "relational",
	ShiftPrecedence:          "shift",
	AdditivePrecedence:       "additive",
	MultiplicativePrecedence: "multiplicative",
	UnaryPrecedence:          "unary",
	PostfixPrecedence:        "postfix",
	LeftHandSidePrecedence:   "left_hand_side",
	CallOrNewPrecedence:      "call_or_new",
	MemberPrecedence:         "member",
	PrimaryPrecedence:        "primary",
	Highest:                  "highest",
}

func (p Precedence) String() string {
	if int(p) < len(precedenceNames) {
		return precedenceNames[p]
	}
	return "invalid"
}

var binaryPrecedence [numKinds]Precedence

func init() {
	set := func(p Precedence, kinds ...Kind) {
		for _, k := range kinds {
			binaryPrecedence[k] = p
		}
	}
	set(CommaPrecedence, Comma)
	for k := assignmentBegin + 1; k < assignmentEnd; k++ {
		set(AssignmentPrecedence, k)
	}
	set(ConditionalPrecedence, Question)
	set(LogicalOrPrecedence, LogicalOr)
	set(LogicalAndPrecedence, LogicalAnd)
	set(BitwiseOrPrecedence, BitOr)
	set(BitwiseXorPrecedence, BitXor)
	set(BitwiseAndPrecedence, BitAnd)
	set(EqualityPrecedence, Equal, StrictEqual, NotEqual, StrictNotEqual)
	set(RelationalPrecedence, Less, LessEqual, Greater, GreaterEqual, InKeyword, InstanceofKeyword)
	set(ShiftPrecedence, ShiftLeft, ShiftRight, ArithmeticShiftRight)
	set(AdditivePrecedence, Plus, Minus)
	set(MultiplicativePrecedence, Star, Slash, Percent)
}

// BinaryPrecedence returns the level of an infix operator: binary operators,
// assignments, the conditional '?' and the comma.
func BinaryPrecedence(k Kind) (Precedence, bool) {
	if k >= numKinds {
		return Lowest, false
	}
	p := binaryPrecedence[k]
	return p, p != Lowest
}

// IsRightAssociative reports whether an infix operator groups to the right.
func IsRightAssociative(k Kind) bool {
	return k == Question || k.IsAssignment()
}

// IsUnaryOperator reports whether k can start a prefix expression.
func IsUnaryOperator(k Kind) bool {
	switch k {
	case Bang, Tilde, Plus, Minus, PlusPlus, MinusMinus, TypeofKeyword, VoidKeyword, DeleteKeyword:
		return true
	}
	return false
}

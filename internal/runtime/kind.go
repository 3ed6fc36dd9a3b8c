package runtime

// Kind tags the ten runtime value variants. Every Value answers its Kind in
// O(1).
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindDecimal
	KindString
	KindArray
	KindObject
	KindFunction
	KindNativeFn
	KindClass
)

var kindNames = [...]string{
	KindNull:     "null",
	KindBoolean:  "boolean",
	KindInteger:  "integer",
	KindDecimal:  "decimal",
	KindString:   "string",
	KindArray:    "array",
	KindObject:   "object",
	KindFunction: "function",
	KindNativeFn: "native-function",
	KindClass:    "class",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// TypeOfName returns the string type_of() reports for values of this kind:
// Integer and Decimal both collapse to "number", Function and NativeFn both
// collapse to "function".
func (k Kind) TypeOfName() string {
	switch k {
	case KindInteger, KindDecimal:
		return "number"
	case KindFunction, KindNativeFn:
		return "function"
	default:
		return k.String()
	}
}

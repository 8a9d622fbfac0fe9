package ir

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
	DateTimeType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType:   "Object",
		ArrayType:    "Array",
		StringType:   "String",
		NumberType:   "Number",
		BoolType:     "Bool",
		NullType:     "Null",
		DateTimeType: "DateTime",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

package types

// Operator represents a comparison operator.
type Operator string

const (
	EQ      Operator = "="
	NE      Operator = "<>"
	GT      Operator = ">"
	GE      Operator = ">="
	LT      Operator = "<"
	LE      Operator = "<="
	LIKE    Operator = "like"
	NotLike Operator = "not like"
)

// Valid reports whether op is a known comparison operator.
func (op Operator) Valid() bool {
	switch op {
	case EQ, NE, GT, GE, LT, LE, LIKE, NotLike:
		return true
	}
	return false
}

// IsPattern reports whether op is a pattern match.
func (op Operator) IsPattern() bool {
	return op == LIKE || op == NotLike
}

// Operation represents the kind of statement.
type Operation string

const (
	OpSelect Operation = "SELECT"
	OpInsert Operation = "INSERT"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
)

// JoinType represents the type of a join.
type JoinType string

const (
	InnerJoin JoinType = "join"
	LeftJoin  JoinType = "left join"
	RightJoin JoinType = "right join"
	FullJoin  JoinType = "full join"
)

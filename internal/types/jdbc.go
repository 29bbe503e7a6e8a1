package types

import (
	"database/sql/driver"
	"reflect"
	"strings"
	"time"
)

// JDBCType is the base SQL type token carried by a column.
// The set mirrors java.sql.JDBCType so mapping layers can pass it through verbatim.
type JDBCType int

const (
	TypeInvalid JDBCType = iota
	TypeArray
	TypeBigint
	TypeBinary
	TypeBit
	TypeBlob
	TypeBoolean
	TypeChar
	TypeClob
	TypeDatalink
	TypeDate
	TypeDecimal
	TypeDistinct
	TypeDouble
	TypeFloat
	TypeInteger
	TypeJavaObject
	TypeLongNVarchar
	TypeLongVarbinary
	TypeLongVarchar
	TypeNChar
	TypeNClob
	TypeNull
	TypeNumeric
	TypeNVarchar
	TypeOther
	TypeReal
	TypeRef
	TypeRefCursor
	TypeRowID
	TypeSmallint
	TypeSQLXML
	TypeStruct
	TypeTime
	TypeTimeWithTimezone
	TypeTimestamp
	TypeTimestampWithTimezone
	TypeTinyint
	TypeVarbinary
	TypeVarchar
)

var jdbcNames = [...]string{
	TypeInvalid:               "INVALID",
	TypeArray:                 "ARRAY",
	TypeBigint:                "BIGINT",
	TypeBinary:                "BINARY",
	TypeBit:                   "BIT",
	TypeBlob:                  "BLOB",
	TypeBoolean:               "BOOLEAN",
	TypeChar:                  "CHAR",
	TypeClob:                  "CLOB",
	TypeDatalink:              "DATALINK",
	TypeDate:                  "DATE",
	TypeDecimal:               "DECIMAL",
	TypeDistinct:              "DISTINCT",
	TypeDouble:                "DOUBLE",
	TypeFloat:                 "FLOAT",
	TypeInteger:               "INTEGER",
	TypeJavaObject:            "JAVA_OBJECT",
	TypeLongNVarchar:          "LONGNVARCHAR",
	TypeLongVarbinary:         "LONGVARBINARY",
	TypeLongVarchar:           "LONGVARCHAR",
	TypeNChar:                 "NCHAR",
	TypeNClob:                 "NCLOB",
	TypeNull:                  "NULL",
	TypeNumeric:               "NUMERIC",
	TypeNVarchar:              "NVARCHAR",
	TypeOther:                 "OTHER",
	TypeReal:                  "REAL",
	TypeRef:                   "REF",
	TypeRefCursor:             "REF_CURSOR",
	TypeRowID:                 "ROWID",
	TypeSmallint:              "SMALLINT",
	TypeSQLXML:                "SQLXML",
	TypeStruct:                "STRUCT",
	TypeTime:                  "TIME",
	TypeTimeWithTimezone:      "TIME_WITH_TIMEZONE",
	TypeTimestamp:             "TIMESTAMP",
	TypeTimestampWithTimezone: "TIMESTAMP_WITH_TIMEZONE",
	TypeTinyint:               "TINYINT",
	TypeVarbinary:             "VARBINARY",
	TypeVarchar:               "VARCHAR",
}

// String returns the JDBC name of the type, e.g. "VARCHAR".
func (t JDBCType) String() string {
	if t < 0 || int(t) >= len(jdbcNames) {
		return jdbcNames[TypeInvalid]
	}
	return jdbcNames[t]
}

// Valid reports whether t is a member of the token set.
func (t JDBCType) Valid() bool {
	return t > TypeInvalid && int(t) < len(jdbcNames)
}

// IsCharacter reports whether t holds character data.
func (t JDBCType) IsCharacter() bool {
	switch t {
	case TypeChar, TypeVarchar, TypeLongVarchar, TypeNChar, TypeNVarchar,
		TypeLongNVarchar, TypeClob, TypeNClob, TypeSQLXML:
		return true
	}
	return false
}

// sqlTypeNames maps lowercased SQL type names (without length/precision) to tokens.
var sqlTypeNames = map[string]JDBCType{
	"array":                       TypeArray,
	"bigint":                      TypeBigint,
	"int8":                        TypeBigint,
	"bigserial":                   TypeBigint,
	"binary":                      TypeBinary,
	"bit":                         TypeBit,
	"blob":                        TypeBlob,
	"bytea":                       TypeBlob,
	"boolean":                     TypeBoolean,
	"bool":                        TypeBoolean,
	"char":                        TypeChar,
	"character":                   TypeChar,
	"clob":                        TypeClob,
	"date":                        TypeDate,
	"decimal":                     TypeDecimal,
	"money":                       TypeDecimal,
	"double":                      TypeDouble,
	"double precision":            TypeDouble,
	"float8":                      TypeDouble,
	"float":                       TypeFloat,
	"integer":                     TypeInteger,
	"int":                         TypeInteger,
	"int4":                        TypeInteger,
	"serial":                      TypeInteger,
	"mediumint":                   TypeInteger,
	"longvarbinary":               TypeLongVarbinary,
	"longblob":                    TypeLongVarbinary,
	"longvarchar":                 TypeLongVarchar,
	"text":                        TypeLongVarchar,
	"longtext":                    TypeLongVarchar,
	"mediumtext":                  TypeLongVarchar,
	"nchar":                       TypeNChar,
	"nclob":                       TypeNClob,
	"ntext":                       TypeLongNVarchar,
	"numeric":                     TypeNumeric,
	"nvarchar":                    TypeNVarchar,
	"real":                        TypeReal,
	"float4":                      TypeReal,
	"smallint":                    TypeSmallint,
	"int2":                        TypeSmallint,
	"smallserial":                 TypeSmallint,
	"xml":                         TypeSQLXML,
	"time":                        TypeTime,
	"timetz":                      TypeTimeWithTimezone,
	"time with time zone":         TypeTimeWithTimezone,
	"timestamp":                   TypeTimestamp,
	"datetime":                    TypeTimestamp,
	"datetime2":                   TypeTimestamp,
	"timestamptz":                 TypeTimestampWithTimezone,
	"timestamp with time zone":    TypeTimestampWithTimezone,
	"datetimeoffset":              TypeTimestampWithTimezone,
	"tinyint":                     TypeTinyint,
	"varbinary":                   TypeVarbinary,
	"varchar":                     TypeVarchar,
	"character varying":           TypeVarchar,
	"string":                      TypeVarchar,
	"timestamp without time zone": TypeTimestamp,
	"uuid":                        TypeOther,
	"json":                        TypeOther,
	"jsonb":                       TypeOther,
}

// ParseJDBCType maps a SQL type name such as "varchar(255)" or "numeric(10,2)"
// to a JDBC token. JDBC names ("VARCHAR", "TIMESTAMP_WITH_TIMEZONE") are
// accepted as well. The second result is false when the name is unknown.
func ParseJDBCType(sqlType string) (JDBCType, bool) {
	name := strings.ToLower(strings.TrimSpace(sqlType))
	if strings.HasSuffix(name, "[]") {
		return TypeArray, true
	}
	if i := strings.IndexByte(name, '('); i != -1 {
		name = strings.TrimSpace(name[:i])
	}
	if t, ok := sqlTypeNames[name]; ok {
		return t, true
	}
	upper := strings.ToUpper(name)
	for i, n := range jdbcNames {
		if i != int(TypeInvalid) && n == upper {
			return JDBCType(i), true
		}
	}
	return TypeInvalid, false
}

var (
	timeType   = reflect.TypeOf(time.Time{})
	valuerType = reflect.TypeOf((*driver.Valuer)(nil)).Elem()
)

// Accepts reports whether a Go value may be bound against a column of type t.
// Values implementing driver.Valuer are accepted for every type since their
// database representation is decided by the value itself. A nil value is
// accepted; callers decide whether NULL is meaningful in their position.
func (t JDBCType) Accepts(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	if rv.Type().Implements(valuerType) {
		return true
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
		if rv.Type().Implements(valuerType) {
			return true
		}
	}
	kind := rv.Kind()

	if t.IsCharacter() {
		return kind == reflect.String
	}

	switch t {
	case TypeTinyint, TypeSmallint, TypeInteger, TypeBigint:
		return isIntegerKind(kind)
	case TypeReal, TypeFloat, TypeDouble:
		return isIntegerKind(kind) || kind == reflect.Float32 || kind == reflect.Float64
	case TypeDecimal, TypeNumeric:
		return isIntegerKind(kind) || kind == reflect.Float32 || kind == reflect.Float64 || kind == reflect.String
	case TypeBit, TypeBoolean:
		return kind == reflect.Bool
	case TypeDate, TypeTime, TypeTimestamp, TypeTimeWithTimezone, TypeTimestampWithTimezone:
		return rv.Type() == timeType
	case TypeBinary, TypeVarbinary, TypeLongVarbinary, TypeBlob:
		return kind == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8
	case TypeInvalid:
		return false
	default:
		return true
	}
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

package bsonjson

// BSON element type tags, per the BSON specification.
const (
	bsonNumber     = 0x01
	bsonString     = 0x02
	bsonObject     = 0x03
	bsonArray      = 0x04
	bsonBinary     = 0x05
	bsonUndefined  = 0x06
	bsonObjectID   = 0x07
	bsonBoolean    = 0x08
	bsonDate       = 0x09
	bsonNull       = 0x0A
	bsonRegexp     = 0x0B
	bsonDBPointer  = 0x0C
	bsonCode       = 0x0D
	bsonSymbol     = 0x0E
	bsonCodeWScope = 0x0F
	bsonInt        = 0x10
	bsonTimestamp  = 0x11
	bsonLong       = 0x12
	bsonDecimal128 = 0x13
	bsonMinKey     = 0xFF
	bsonMaxKey     = 0x7F
)

// incompatibleTypes are BSON tags that are structurally well-formed but have
// no direct JSON encoding.  Per spec, encountering one is a fatal error.
var incompatibleTypes = map[byte]bool{
	bsonBinary:     true,
	bsonRegexp:     true,
	bsonDBPointer:  true,
	bsonCode:       true,
	bsonSymbol:     true,
	bsonCodeWScope: true,
	bsonTimestamp:  true,
	bsonDecimal128: true,
	bsonMinKey:     true,
	bsonMaxKey:     true,
}

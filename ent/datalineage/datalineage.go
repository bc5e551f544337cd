// Code generated by ent, DO NOT EDIT.

package datalineage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the datalineage type in the database.
	Label = "data_lineage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "data_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastAccessed holds the string denoting the last_accessed field in the database.
	FieldLastAccessed = "last_accessed"
	// FieldCurrentTier holds the string denoting the current_tier field in the database.
	FieldCurrentTier = "current_tier"
	// FieldDependencies holds the string denoting the dependencies field in the database.
	FieldDependencies = "dependencies"
	// FieldConsumers holds the string denoting the consumers field in the database.
	FieldConsumers = "consumers"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// FieldSchemaVersion holds the string denoting the schema_version field in the database.
	FieldSchemaVersion = "schema_version"
	// Table holds the table name of the datalineage in the database.
	Table = "data_lineages"
)

// Columns holds all SQL columns for datalineage fields.
var Columns = []string{
	FieldID,
	FieldSource,
	FieldSourceType,
	FieldCreatedAt,
	FieldLastAccessed,
	FieldCurrentTier,
	FieldDependencies,
	FieldConsumers,
	FieldQualityScore,
	FieldSchemaVersion,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastAccessed holds the default value on creation for the "last_accessed" field.
	DefaultLastAccessed func() time.Time
	// DefaultSchemaVersion holds the default value on creation for the "schema_version" field.
	DefaultSchemaVersion int
)

// SourceType defines the type for the "source_type" enum field.
type SourceType string

// SourceType values.
const (
	SourceTypeSensor    SourceType = "sensor"
	SourceTypeProcessor SourceType = "processor"
	SourceTypeEvent     SourceType = "event"
	SourceTypeManual    SourceType = "manual"
)

func (st SourceType) String() string {
	return string(st)
}

// SourceTypeValidator is a validator for the "source_type" field enum values. It is called by the builders before save.
func SourceTypeValidator(st SourceType) error {
	switch st {
	case SourceTypeSensor, SourceTypeProcessor, SourceTypeEvent, SourceTypeManual:
		return nil
	default:
		return fmt.Errorf("datalineage: invalid enum value for source_type field: %q", st)
	}
}

// CurrentTier defines the type for the "current_tier" enum field.
type CurrentTier string

// CurrentTierHot is the default value of the CurrentTier enum.
const DefaultCurrentTier = CurrentTierHot

// CurrentTier values.
const (
	CurrentTierHot    CurrentTier = "hot"
	CurrentTierWarm   CurrentTier = "warm"
	CurrentTierCold   CurrentTier = "cold"
	CurrentTierFrozen CurrentTier = "frozen"
)

func (ct CurrentTier) String() string {
	return string(ct)
}

// CurrentTierValidator is a validator for the "current_tier" field enum values. It is called by the builders before save.
func CurrentTierValidator(ct CurrentTier) error {
	switch ct {
	case CurrentTierHot, CurrentTierWarm, CurrentTierCold, CurrentTierFrozen:
		return nil
	default:
		return fmt.Errorf("datalineage: invalid enum value for current_tier field: %q", ct)
	}
}

// OrderOption defines the ordering options for the DataLineage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastAccessed orders the results by the last_accessed field.
func ByLastAccessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAccessed, opts...).ToFunc()
}

// ByCurrentTier orders the results by the current_tier field.
func ByCurrentTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentTier, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
}

// BySchemaVersion orders the results by the schema_version field.
func BySchemaVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchemaVersion, opts...).ToFunc()
}

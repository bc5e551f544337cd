// Code generated by ent, DO NOT EDIT.

package datalineage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jackeyunjie/growthd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldContainsFold(FieldID, id))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEQ(FieldSource, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEQ(FieldCreatedAt, v))
}

// LastAccessed applies equality check predicate on the "last_accessed" field. It's identical to LastAccessedEQ.
func LastAccessed(v time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEQ(FieldLastAccessed, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v float64) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEQ(FieldQualityScore, v))
}

// SchemaVersion applies equality check predicate on the "schema_version" field. It's identical to SchemaVersionEQ.
func SchemaVersion(v int) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEQ(FieldSchemaVersion, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldContainsFold(FieldSource, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNotIn(FieldSourceType, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldLTE(FieldCreatedAt, v))
}

// LastAccessedEQ applies the EQ predicate on the "last_accessed" field.
func LastAccessedEQ(v time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEQ(FieldLastAccessed, v))
}

// LastAccessedNEQ applies the NEQ predicate on the "last_accessed" field.
func LastAccessedNEQ(v time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNEQ(FieldLastAccessed, v))
}

// LastAccessedIn applies the In predicate on the "last_accessed" field.
func LastAccessedIn(vs ...time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldIn(FieldLastAccessed, vs...))
}

// LastAccessedNotIn applies the NotIn predicate on the "last_accessed" field.
func LastAccessedNotIn(vs ...time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNotIn(FieldLastAccessed, vs...))
}

// LastAccessedGT applies the GT predicate on the "last_accessed" field.
func LastAccessedGT(v time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldGT(FieldLastAccessed, v))
}

// LastAccessedGTE applies the GTE predicate on the "last_accessed" field.
func LastAccessedGTE(v time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldGTE(FieldLastAccessed, v))
}

// LastAccessedLT applies the LT predicate on the "last_accessed" field.
func LastAccessedLT(v time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldLT(FieldLastAccessed, v))
}

// LastAccessedLTE applies the LTE predicate on the "last_accessed" field.
func LastAccessedLTE(v time.Time) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldLTE(FieldLastAccessed, v))
}

// CurrentTierEQ applies the EQ predicate on the "current_tier" field.
func CurrentTierEQ(v CurrentTier) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEQ(FieldCurrentTier, v))
}

// CurrentTierNEQ applies the NEQ predicate on the "current_tier" field.
func CurrentTierNEQ(v CurrentTier) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNEQ(FieldCurrentTier, v))
}

// CurrentTierIn applies the In predicate on the "current_tier" field.
func CurrentTierIn(vs ...CurrentTier) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldIn(FieldCurrentTier, vs...))
}

// CurrentTierNotIn applies the NotIn predicate on the "current_tier" field.
func CurrentTierNotIn(vs ...CurrentTier) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNotIn(FieldCurrentTier, vs...))
}

// DependenciesIsNil applies the IsNil predicate on the "dependencies" field.
func DependenciesIsNil() predicate.DataLineage {
	return predicate.DataLineage(sql.FieldIsNull(FieldDependencies))
}

// DependenciesNotNil applies the NotNil predicate on the "dependencies" field.
func DependenciesNotNil() predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNotNull(FieldDependencies))
}

// ConsumersIsNil applies the IsNil predicate on the "consumers" field.
func ConsumersIsNil() predicate.DataLineage {
	return predicate.DataLineage(sql.FieldIsNull(FieldConsumers))
}

// ConsumersNotNil applies the NotNil predicate on the "consumers" field.
func ConsumersNotNil() predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNotNull(FieldConsumers))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v float64) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v float64) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...float64) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...float64) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v float64) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v float64) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v float64) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v float64) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldLTE(FieldQualityScore, v))
}

// QualityScoreIsNil applies the IsNil predicate on the "quality_score" field.
func QualityScoreIsNil() predicate.DataLineage {
	return predicate.DataLineage(sql.FieldIsNull(FieldQualityScore))
}

// QualityScoreNotNil applies the NotNil predicate on the "quality_score" field.
func QualityScoreNotNil() predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNotNull(FieldQualityScore))
}

// SchemaVersionEQ applies the EQ predicate on the "schema_version" field.
func SchemaVersionEQ(v int) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldEQ(FieldSchemaVersion, v))
}

// SchemaVersionNEQ applies the NEQ predicate on the "schema_version" field.
func SchemaVersionNEQ(v int) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNEQ(FieldSchemaVersion, v))
}

// SchemaVersionIn applies the In predicate on the "schema_version" field.
func SchemaVersionIn(vs ...int) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldIn(FieldSchemaVersion, vs...))
}

// SchemaVersionNotIn applies the NotIn predicate on the "schema_version" field.
func SchemaVersionNotIn(vs ...int) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldNotIn(FieldSchemaVersion, vs...))
}

// SchemaVersionGT applies the GT predicate on the "schema_version" field.
func SchemaVersionGT(v int) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldGT(FieldSchemaVersion, v))
}

// SchemaVersionGTE applies the GTE predicate on the "schema_version" field.
func SchemaVersionGTE(v int) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldGTE(FieldSchemaVersion, v))
}

// SchemaVersionLT applies the LT predicate on the "schema_version" field.
func SchemaVersionLT(v int) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldLT(FieldSchemaVersion, v))
}

// SchemaVersionLTE applies the LTE predicate on the "schema_version" field.
func SchemaVersionLTE(v int) predicate.DataLineage {
	return predicate.DataLineage(sql.FieldLTE(FieldSchemaVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DataLineage) predicate.DataLineage {
	return predicate.DataLineage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DataLineage) predicate.DataLineage {
	return predicate.DataLineage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DataLineage) predicate.DataLineage {
	return predicate.DataLineage(sql.NotPredicates(p))
}

package database

import (
	"fmt"

	"gorm.io/gorm/schema"
)

// NamingStrategy names foreign keys fk_<table>_<column>_<referenced_table>
// so constraint names stay stable across migrations.
type NamingStrategy struct {
	schema.NamingStrategy
}

// RelationshipFKName implements schema.Namer
func (ns NamingStrategy) RelationshipFKName(rel schema.Relationship) string {
	for _, ref := range rel.References {
		if ref.PrimaryKey == nil || ref.ForeignKey == nil {
			continue
		}
		return fmt.Sprintf("fk_%s_%s_%s",
			ref.ForeignKey.Schema.Table, ref.ForeignKey.DBName, ref.PrimaryKey.Schema.Table)
	}
	return ns.NamingStrategy.RelationshipFKName(rel)
}

package model

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseSchema(t *testing.T, m any) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(m, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

// The registry must describe exactly the foreign keys the model tags create.
func TestRegistry_RelationsMatchModelConstraints(t *testing.T) {
	reg := NewRegistry()

	var fromTags []Relation
	for _, m := range reg.Models() {
		s := parseSchema(t, m)
		for _, rel := range s.Relationships.Relations {
			c := rel.ParseConstraint()
			if c == nil {
				continue
			}
			require.Len(t, c.ForeignKeys, 1, "constraint %s", c.Name)
			fromTags = append(fromTags, Relation{
				Parent:     c.ReferenceSchema.Table,
				Child:      c.Schema.Table,
				ForeignKey: c.ForeignKeys[0].DBName,
				OnDelete:   OnDelete(c.OnDelete),
			})
		}
	}

	assert.ElementsMatch(t, reg.relations, fromTags)
}

func TestRegistry_ModelsAreMigratedAfterTheirParents(t *testing.T) {
	reg := NewRegistry()

	seen := map[string]bool{}
	for _, m := range reg.Models() {
		table := parseSchema(t, m).Table
		for _, rel := range reg.relations {
			if rel.Child == table {
				assert.True(t, seen[rel.Parent], "%s migrated before its parent %s", table, rel.Parent)
			}
		}
		seen[table] = true
	}
}

func TestRegistry_PreloadsNameRealAssociations(t *testing.T) {
	reg := NewRegistry()

	for _, m := range reg.Models() {
		s := parseSchema(t, m)
		for _, p := range reg.Preloads(s.Table) {
			cur := s
			for _, name := range strings.Split(p, ".") {
				rel, ok := cur.Relationships.Relations[name]
				require.True(t, ok, "%s has no association %s", cur.Table, name)
				cur = rel.FieldSchema
			}
		}
	}
}

func TestRegistry_Dependents(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, []Relation{{Parent: "roles", Child: "usuarios", ForeignKey: "rol_id", OnDelete: Restrict}}, reg.Restricting("roles"))
	assert.Empty(t, reg.Restricting("usuarios"))

	var children []string
	for _, rel := range reg.Dependents("carreras") {
		children = append(children, rel.Child)
	}
	assert.ElementsMatch(t, []string{"perfiles_usuario", "coordinadores_carrera"}, children)
}

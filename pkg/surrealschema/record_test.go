package surrealschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/surrealschema/pkg/surreal"
	"github.com/dmitrymomot/surrealschema/pkg/surrealschema"
	"github.com/dmitrymomot/surrealschema/pkg/validator"
)

type user struct {
	surrealschema.Entity
	Name string
}

// profile lists its fields, so strict schemas can see Name.
type profile struct {
	surrealschema.Entity
	Name string
}

func (p profile) Field(name string) (any, bool) {
	if name == "name" {
		return p.Name, true
	}
	return p.Entity.Field(name)
}

func (p profile) FieldNames() []string {
	return []string{"id", "name"}
}

func TestRecord(t *testing.T) {
	t.Parallel()

	t.Run("any table", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, surrealschema.Record.Validate(map[string]any{"id": surreal.NewRecordID("animal", 1)}))
		assert.Empty(t, surrealschema.Record.Validate(surrealschema.NewEntity("person", "tobie")))
	})

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()
		errs := surrealschema.Record.Validate(map[string]any{"name": "tobie"})
		require.Len(t, errs, 1)
		assert.Equal(t, []string{"id"}, errs[0].Path)
		assert.Equal(t, "Value is not a valid RecordId", errs[0].Message)
	})

	t.Run("non object", func(t *testing.T) {
		t.Parallel()
		errs := surrealschema.Record.Validate(surreal.NewRecordID("person", 1))
		require.Len(t, errs, 1)
		assert.Equal(t, validator.CodeInvalidType, errs[0].Code)
		assert.Empty(t, errs[0].Path)
	})
}

func TestRecordOf(t *testing.T) {
	t.Parallel()

	users, err := surrealschema.RecordOf("user")
	require.NoError(t, err)

	t.Run("matching table", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, users.Validate(map[string]any{"id": surreal.NewRecordID("user", "tobie")}))
		assert.NoError(t, validator.Parse(users, surrealschema.NewEntity("user", 1)))
	})

	t.Run("other table", func(t *testing.T) {
		t.Parallel()
		errs := users.Validate(map[string]any{"id": surreal.NewRecordID("account", "tobie")})
		require.Len(t, errs, 1)
		assert.Equal(t, []string{"id"}, errs[0].Path)
		assert.Equal(t, "id", errs[0].Field)
		assert.Equal(t, "Value is not a valid RecordId or is not from table: user", errs[0].Message)

		err := validator.Parse(users, surrealschema.NewEntity("account", 1))
		require.Error(t, err)
		assert.True(t, validator.ExtractValidationErrors(err).Has("id"))
	})

	t.Run("extra fields are allowed", func(t *testing.T) {
		t.Parallel()
		u := user{Entity: surrealschema.NewEntity("user", "tobie"), Name: "Tobie"}
		assert.Empty(t, users.Validate(u))
		assert.Empty(t, users.Validate(map[string]any{"id": u.ID, "name": u.Name}))
	})

	t.Run("strict rejects extra fields", func(t *testing.T) {
		t.Parallel()
		strict := users.Strict()

		errs := strict.Validate(profile{Entity: surrealschema.NewEntity("user", 1), Name: "Tobie"})
		require.Len(t, errs, 1)
		assert.Equal(t, "Unrecognized key(s) in object: 'name'", errs[0].Message)

		assert.Empty(t, strict.Extend(map[string]validator.Schema{"name": validator.String()}).
			Validate(profile{Entity: surrealschema.NewEntity("user", 1), Name: "Tobie"}))

		errs = strict.Validate(map[string]any{"id": surreal.NewRecordID("user", 1), "name": "Tobie"})
		require.Len(t, errs, 1)
		assert.Equal(t, validator.CodeUnrecognizedKeys, errs[0].Code)
		assert.Equal(t, "Unrecognized key(s) in object: 'name'", errs[0].Message)
	})

	t.Run("strict rejects structs that can not list fields", func(t *testing.T) {
		t.Parallel()
		strict := users.Strict()

		for _, v := range []any{
			surrealschema.NewEntity("user", 1),
			user{Entity: surrealschema.NewEntity("user", 1), Name: "Tobie"},
		} {
			errs := strict.Validate(v)
			require.Len(t, errs, 1, "%#v", v)
			assert.Equal(t, validator.CodeUnrecognizedKeys, errs[0].Code)
			assert.Equal(t, "validation.unlisted_keys", errs[0].TranslationKey)
		}
	})

	t.Run("nil pointers are not objects", func(t *testing.T) {
		t.Parallel()
		for _, v := range []any{(*surrealschema.Entity)(nil), (*user)(nil), (*profile)(nil)} {
			errs := users.Validate(v)
			require.Len(t, errs, 1, "%T", v)
			assert.Equal(t, validator.CodeInvalidType, errs[0].Code)
			assert.Equal(t, "Expected object", errs[0].Message)
			assert.Empty(t, errs[0].Path)
		}
		assert.Len(t, surrealschema.Record.Validate((*surrealschema.Entity)(nil)), 1)
	})

	t.Run("extend keeps the id check", func(t *testing.T) {
		t.Parallel()
		named := users.Extend(map[string]validator.Schema{"name": validator.NonEmptyString()})

		assert.Empty(t, named.Validate(map[string]any{"id": surreal.NewRecordID("user", 1), "name": "Tobie"}))

		errs := named.Validate(map[string]any{"id": surreal.NewRecordID("post", 1), "name": ""})
		require.Len(t, errs, 2)
		assert.True(t, errs.HasPath("id"))
		assert.True(t, errs.HasPath("name"))
	})
}

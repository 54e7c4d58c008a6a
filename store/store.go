// Package store is the authoritative in-memory catalog: products,
// categories, users and the site settings singleton, for the lifetime of
// the running process.
package store

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// ValidationError enumerates the offending fields of a rejected payload.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

type Store struct {
	db       *gorm.DB
	validate *validator.Validate
}

// New wraps a database handle. The store carries no package-level state so
// tests can run against isolated databases.
func New(database *gorm.DB) *Store {
	validate := validator.New()
	// Report offending fields under their JSON names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return &Store{db: database, validate: validate}
}

func (s *Store) check(record interface{}) error {
	err := s.validate.Struct(record)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}

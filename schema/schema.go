package schema

import (
	"fmt"
	"go/ast"
	"reflect"
	"sync"

	"github.com/upyorm/upy/utils"
)

// Tabler declares the table name of a model
type Tabler interface {
	TableName() string
}

// Schema table model parsed from a struct
type Schema struct {
	Name           string
	ModelType      reflect.Type
	Table          string
	Fields         []*Field
	FieldsByName   map[string]*Field
	FieldsByDBName map[string]*Field

	PrimaryFields           []*Field
	PrioritizedPrimaryField *Field
}

func (schema Schema) String() string {
	return fmt.Sprintf("%v.%v", schema.ModelType.PkgPath(), schema.ModelType.Name())
}

// LookUpField find field by column name or struct field name
func (schema Schema) LookUpField(name string) *Field {
	if field, ok := schema.FieldsByDBName[name]; ok {
		return field
	}
	if field, ok := schema.FieldsByName[name]; ok {
		return field
	}
	return nil
}

// Parse get data type from struct, results are cached in cacheStore
func Parse(dest interface{}, cacheStore *sync.Map, namer Namer) (*Schema, error) {
	if dest == nil {
		return nil, fmt.Errorf("%w: %+v", ErrUnsupportedModel, dest)
	}

	modelType := reflect.ValueOf(dest).Type()
	for modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	if modelType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v is not a struct", ErrUnsupportedModel, modelType)
	}

	if v, ok := cacheStore.Load(modelType); ok {
		return v.(*Schema), nil
	}

	tableName := namer.TableName(modelType.Name())
	if tabler, ok := reflect.New(modelType).Interface().(Tabler); ok {
		if tableName = tabler.TableName(); tableName == "" {
			return nil, fmt.Errorf("%w: %v", ErrTableNameRequired, modelType)
		}
	}

	schema := &Schema{
		Name:           modelType.Name(),
		ModelType:      modelType,
		Table:          tableName,
		FieldsByName:   map[string]*Field{},
		FieldsByDBName: map[string]*Field{},
	}

	for i := 0; i < modelType.NumField(); i++ {
		fieldStruct := modelType.Field(i)
		if !ast.IsExported(fieldStruct.Name) {
			continue
		}

		tagSettings := ParseTagSetting(fieldStruct.Tag)
		if _, ok := tagSettings["-"]; ok {
			continue
		}

		field := &Field{
			Name:        fieldStruct.Name,
			DBName:      tagSettings["COLUMN"],
			Table:       tableName,
			StructField: fieldStruct,
			TagSettings: tagSettings,
		}
		if field.DBName == "" {
			field.DBName = namer.ColumnName(tableName, field.Name)
		}
		if val, ok := tagSettings["PRIMARYKEY"]; ok && utils.CheckTruth(val) {
			field.PrimaryKey = true
		} else if val, ok := tagSettings["PRIMARY_KEY"]; ok && utils.CheckTruth(val) {
			field.PrimaryKey = true
		}

		if _, ok := schema.FieldsByDBName[field.DBName]; ok {
			continue
		}
		schema.Fields = append(schema.Fields, field)
		schema.FieldsByName[field.Name] = field
		schema.FieldsByDBName[field.DBName] = field
		if field.PrimaryKey {
			schema.PrimaryFields = append(schema.PrimaryFields, field)
		}
	}

	if len(schema.PrimaryFields) == 0 {
		if field := schema.LookUpField("id"); field != nil {
			field.PrimaryKey = true
			schema.PrimaryFields = append(schema.PrimaryFields, field)
		}
	}
	if len(schema.PrimaryFields) == 1 {
		schema.PrioritizedPrimaryField = schema.PrimaryFields[0]
	}

	if v, loaded := cacheStore.LoadOrStore(modelType, schema); loaded {
		return v.(*Schema), nil
	}
	return schema, nil
}

package adapters

import (
	"context"

	"github.com/goliatone/go-planconfig/pkg/sources"
)

const defaultDataType = "string"

type dbMappingSheet struct{}

// NewDBMappingSheet decodes DB mapping spreadsheets. Columns are resolved by
// the first non-empty alias: field_name|fieldName|name,
// db_column|dbColumn|column, data_type|dataType|type (default "string") and
// table_name|tableName|table.
func NewDBMappingSheet() Adapter {
	return dbMappingSheet{}
}

func (dbMappingSheet) Name() string { return "db-mapping-sheet" }

func (dbMappingSheet) Role() Role { return RoleDBMapping }

func (dbMappingSheet) Detect(src sources.Source, raw []byte) bool {
	return isSpreadsheet(src, raw)
}

func (dbMappingSheet) Decode(_ context.Context, doc sources.Document) (sources.Bundle, error) {
	rows, err := readSheet(doc)
	if err != nil {
		return sources.Bundle{}, err
	}

	mappings := make([]sources.DBMapping, 0, len(rows))
	for _, r := range rows {
		mappings = append(mappings, sources.DBMapping{
			FieldName: r.first("field_name", "fieldName", "name"),
			DBColumn:  r.first("db_column", "dbColumn", "column"),
			DataType:  r.firstOr(defaultDataType, "data_type", "dataType", "type"),
			TableName: r.first("table_name", "tableName", "table"),
		})
	}
	return sources.Bundle{DBMappings: mappings}, nil
}

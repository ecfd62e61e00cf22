package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps log output filterable.
const (
	FieldFile         = "file_path"
	FieldPage         = "page"
	FieldPageID       = "page_id"
	FieldRegion       = "region"
	FieldRows         = "rows"
	FieldCount        = "count"
	FieldReason       = "reason"
	FieldDelimiter    = "delimiter"
	FieldInputFile    = "input_file"
	FieldOutputFile   = "output_file"
	FieldTransactions = "transactions"
	FieldHeaders      = "headers"
)

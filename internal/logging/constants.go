package logging

// Standardized field names for structured logging.
const (
	FieldInputFile    = "input_file"
	FieldOutputFile   = "output_file"
	FieldMode         = "mode"
	FieldCount        = "count"
	FieldError        = "error"
	FieldDuration     = "duration"
	FieldDelimiter    = "delimiter"
	FieldServer       = "server"
	FieldUser         = "username"
	FieldURL          = "url"
	FieldMethod       = "method"
	FieldStatus       = "status"
	FieldAddressSpace = "address_space"
	FieldSheet        = "sheet"
)

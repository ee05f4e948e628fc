package errors

// Convenience functions for common error patterns

// Input documents

func ParseFailed(path string, cause error) *ObjdocError {
	return Wrap(cause, CategoryParse, SeverityFatal, "malformed input document").
		WithContext("path", path)
}

func SchemaMissing(path, field string) *ObjdocError {
	return New(CategorySchema, SeverityFatal, "required key missing: "+field).
		WithContext("path", path).
		WithContext("field", field)
}

func SchemaInvalid(path, field, reason string) *ObjdocError {
	return New(CategorySchema, SeverityFatal, "invalid value for "+field+": "+reason).
		WithContext("path", path).
		WithContext("field", field).
		WithContext("reason", reason)
}

// Templates

func TemplateInvalid(path string, cause error) *ObjdocError {
	return Wrap(cause, CategoryRender, SeverityFatal, "template could not be loaded").
		WithContext("template", path)
}

func RenderFailed(class string, cause error) *ObjdocError {
	return Wrap(cause, CategoryRender, SeverityFatal, "template rendering failed").
		WithContext("class", class)
}

// File system

func IOFailed(operation, path string, cause error) *ObjdocError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, operation+" failed").
		WithContext("operation", operation).
		WithContext("path", path)
}

// Invocation

func ConfigInvalid(field, reason string) *ObjdocError {
	return New(CategoryConfig, SeverityFatal, "invalid option "+field+": "+reason).
		WithContext("field", field)
}

package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *DocCheckError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *DocCheckError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Fatal pre-run errors. Either of these aborts before any block is processed.

func FatalScan(root string, cause error) *DocCheckError {
	return Wrap(cause, CategoryScan, SeverityFatal, "content root unreadable").
		WithContext("root", root)
}

func FatalBoilerplate(path string, cause error) *DocCheckError {
	return Wrap(cause, CategoryBoilerplate, SeverityFatal, "boilerplate file unreadable").
		WithContext("path", path)
}

// Compiler invocation errors

func CompilerStart(compiler string, cause error) *DocCheckError {
	return Wrap(cause, CategoryCompiler, SeverityError, "compiler failed to start").
		WithContext("compiler", compiler)
}

func UnitWrite(path string, cause error) *DocCheckError {
	return Wrap(cause, CategoryCompiler, SeverityError, "synthetic unit write failed").
		WithContext("path", path)
}

// Infrastructure reports a diagnostic that resolved inside the shared
// boilerplate: the prelude itself is broken, not the documentation snippet.
func Infrastructure(message string) *DocCheckError {
	return New(CategoryInfrastructure, SeverityError, message)
}

// Watch mode errors

func WatchSetup(cause error) *DocCheckError {
	return Wrap(cause, CategoryWatch, SeverityFatal, "watch mode setup failed")
}

func HistoryStore(operation string, cause error) *DocCheckError {
	return Wrap(cause, CategoryWatch, SeverityWarning, "run history store operation failed").
		WithContext("operation", operation)
}

// Git errors

func GitClone(repo string, cause error) *DocCheckError {
	return Wrap(cause, CategoryGit, SeverityFatal, "repository clone failed").
		WithContext("repository", repo)
}

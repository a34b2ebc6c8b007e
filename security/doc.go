// Package security validates the inputs that reach the file system: endpoint
// definition paths and endpoint names.
//
// # Path Validation
//
//   - Rejects empty paths and ".." sequences
//   - Resolves symbolic links and re-checks the resolved path
//   - Accepts paths that do not exist yet
//
// # Endpoint Names
//
//   - Must start with an alphanumeric character
//   - May contain letters, digits, underscore, hyphen and dot
//   - At most 63 characters (DNS label limit)
//
// # Example Usage
//
//	if err := security.ValidatePath(file); err != nil {
//	    return fmt.Errorf("invalid endpoints file: %w", err)
//	}
//
//	if err := security.ValidateEndpointName(name); err != nil {
//	    return err
//	}
//
//	if errors.Is(security.ValidateFilePermissions(file), security.ErrInsecureFilePermissions) {
//	    logutil.Warn("endpoints file is writable by others", "file", file)
//	}
package security

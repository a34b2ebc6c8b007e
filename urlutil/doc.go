// Package urlutil adds strict validation on top of the permissive urlvalue
// parser.
//
// urlvalue never rejects a string: short hosts, odd labels and out-of-range
// ports all parse. Code that takes endpoints from users or configuration
// should check them here.
//
// # Usage
//
// Use Parse to parse and validate in one step:
//
//	u, err := urlutil.Parse("https://api.example.com/v1", urlvalue.WithPort(443))
//	if err != nil {
//		return fmt.Errorf("invalid endpoint: %w", err)
//	}
//
// Use Validate or ValidateHTTPSOnly on a value that already exists:
//
//	if err := urlutil.ValidateHTTPSOnly(u); err != nil {
//		return fmt.Errorf("API endpoint must use HTTPS: %w", err)
//	}
//
// Use ValidateDomain on bare host names:
//
//	if err := urlutil.ValidateDomain("api.example.com"); err != nil {
//		return err
//	}
//
// # Validation Rules
//
//   - The host must have a name and a domain label (localhost excepted)
//   - Labels hold letters, digits and inner hyphens only, up to 63 characters
//   - The host must not exceed 253 characters or contain empty labels
//   - Ports must fall within 0-65535
//   - The full URL must not exceed 2048 characters
package urlutil

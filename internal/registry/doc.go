// Package registry defines the contract between the ability command tree and
// the host that owns ability and category registration.
//
// The command tree never reaches into a global registry. Every command
// receives a Registry value, which lets tests substitute a scripted fake and
// lets the binary plug in the file-backed host from internal/host.
//
// # Errors
//
// Operations report failures with two error types:
//
//   - NotFoundError: an ability name or category slug did not resolve.
//   - HostError: the host refused or failed an execute, validate or
//     permission request. Its message is what the user sees.
//
// Both are matched with errors.As through IsNotFound and IsHostError.
package registry

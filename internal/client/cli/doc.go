// Package cli provides the interactive command-line front end of the
// session client.
//
// It wires configuration, the three storage substrates, the reconciler, the
// remote client and the session service, then runs a REPL. On start the
// stored session and theme are restored, so a session created on a sibling
// subdomain (shared cookie) or in the same tab is picked up.
//
// Key features:
//   - Login / Signup / Logout (with confirmation)
//   - Theme selection and saving it to the account
//   - Profile display
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

// Package manager keeps the account registry and Sandboxie.ini coherent.
//
// Sandboxie.ini is shared with Sandboxie and the user, so the Manager never
// trusts what it last wrote: every operation resolves the file again and
// re-reads the section it cares about. A missing section for a known
// account is repaired on Launch. Failures that do not block the operation
// (a failed reload, an unwritable config, a launch that did not start) are
// returned as warnings in the Result instead of errors.
//
// Positions are 1-based, matching the menu numbering.
package manager

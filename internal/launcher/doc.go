// Package launcher runs external programs and drives the Sandboxie
// Start.exe launcher.
//
// A Runner executes a program either waiting for it (Run) or detached
// (Start). Two strategies exist: Direct executes the binary itself, and
// Shell hands a command line to the platform shell. Fallback chains them
// so that the shell is tried only after the direct attempt fails, and only
// the final outcome is reported.
//
// Sandboxie wraps a Runner with the two launcher verbs the tool needs:
//
//	Start.exe /reload                       config reload, waited on
//	Start.exe /box:Viber_Work C:\...\Viber.exe  launch, not waited on
package launcher

// Package output provides structured output and error handling for the moodlog CLI.
//
// Every command writes through a Printer, which switches between styled
// human output and JSON:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Imported 12 notes"})
//	printer.Error(err)
//
// In JSON mode errors are written as {"error": "...", "code": N}.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad args, malformed note
//	output.ExitSystemError // 2: dayone2 missing or failing, I/O error
//	output.ExitPartial     // 3: --keep-going run with failures
//
// Errors built with NewUserError, NewSystemError and NewPartialError carry
// their code through to the process exit status via GetExitCode.
package output

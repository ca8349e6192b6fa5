// Package builtin implements the engine's reserved function
// vocabulary (§6): min, max, abs, len, print, plus the two functions
// this expansion adds — contains and humanize. Each is an
// exprctx.Function, registered into a Context by the root package
// unless config.Config.ReservedFunctionsEnabled() is false.
//
// None of these functions are special to the parser or evaluator —
// they are ordinary Call targets, reserved only in the sense that the
// root package registers them by default and a host may still
// override any of them with its own binding under the same name.
package builtin

// Package core holds the ambient configuration shared by the access chain:
// the diagnostic logger and the switch that turns diagnostics on. Settings
// can be set process-wide through Conf, from the environment, or per call
// through context options.
package core

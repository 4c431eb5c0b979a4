// Package adb wraps the Android Debug Bridge executable as a device lister
// and a capture source for live logcat sessions.
//
// The Client shells out to adb rather than speaking the adb wire protocol:
// Devices runs "adb devices -l" and parses its tabular output, and Start
// spawns "adb logcat -v <format>" with the session's device and filterspec
// arguments, streaming stdout lines as session chunk events. A nonzero exit
// while the capture is live surfaces as a session failure with the process's
// stderr attached; a clean or cancelled exit ends the stream normally.
package adb

// Package adapter lets an old port-based joystick be used wherever a USB
// joystick is expected.
//
// JoystickAdapter implements USBJoystick by delegating to any OldJoystick.
// Values read through the adapter are passed through unchanged.
package adapter

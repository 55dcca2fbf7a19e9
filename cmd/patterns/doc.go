// Command patterns runs the pattern demos.
//
// Usage:
//
//	patterns [-pattern all|adapter|builder|decorator|isp|singleton] [-list]
//	         [-seed N] [-name NAME] [-class mage|warrior|rogue]
//
// Every flag defaults to an environment variable:
//
//	PATTERNS_PATTERN          demo to run (default "all")
//	PATTERNS_SEED             joystick random seed, 0 means unseeded (default 0)
//	PATTERNS_CHARACTER_NAME   name used by the builder demo (default "Gentleman")
//	PATTERNS_CHARACTER_CLASS  class used by the builder demo (default "warrior")
//
// Exit codes: 0 on success, 1 when a demo or the environment fails, 2 on
// invalid usage.
package main

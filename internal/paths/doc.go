// Package paths resolves the locations llcheck reads its own settings from.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance:
//
//	paths.ConfigDir()  // $XDG_CONFIG_HOME/llcheck, or $LLCHECK_CONFIG_DIR
//	paths.ConfigFile() // <ConfigDir>/config.yaml
//
// It also expands "~/" prefixes in user-supplied paths with [ExpandHome].
package paths

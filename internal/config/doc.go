// Package config manages llcheck's own settings.
//
// Settings are distinct from the environment documents llcheck validates:
// they only choose how reports and logs are rendered and how input files
// are decoded.
//
// # Settings File
//
// Settings are read with Viper from the first of:
//
//	./.llcheck/config.yaml
//	$XDG_CONFIG_HOME/llcheck/config.yaml (or $LLCHECK_CONFIG_DIR/config.yaml)
//
// or from the file given with --config. The file is optional:
//
//	version: 1
//	format: json        # report format: text or json
//	input_format: auto  # auto, yaml or toml
//	log_format: text    # text or json
//
// Every key can also be set through the environment with the LLCHECK_
// prefix, e.g. LLCHECK_FORMAT=json.
//
// # Loading
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//
// Loaded settings are validated; see [Validate].
package config

// Package config provides settings and state paths for viberbox.
//
// # State Directory
//
// All state lives in one directory, by default os.UserConfigDir()/viberbox
// (%APPDATA%\viberbox on Windows). VIBERBOX_STATE_DIR or --state-dir
// overrides it.
//
//	config.toml     user settings (optional)
//	accounts.txt    account registry, one "name|box" record per line
//	viber_path.txt  remembered application path
//	events.jsonl    audit history
//
// # Settings
//
// config.toml is decoded with BurntSushi/toml over DefaultSettings:
//
//	box_prefix          = "Viber_"
//	switch_prefix       = "/"
//	reload_timeout      = "5s"
//	launcher_path       = ""   # Start.exe
//	sandbox_config_path = ""   # Sandboxie.ini
//	application_path    = ""   # Viber.exe
//	log_file            = ""
//
// A leading ~ in any path is expanded. LoadSettings validates after
// parsing.
package config

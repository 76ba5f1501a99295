package config

// Base application details
const AppName = "vie"
const Version = "0.1.0"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "vie.log"

// UI Layout
const StatusBarHeight = 1

const DefaultTabWidth = 4
const SystemClipboard = false

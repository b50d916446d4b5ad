package platform

// Package platform contains OS integration used by the browser: revealing a
// file in the system file manager, user directories, the options file
// location and the atomic copy used to export cache files.

/*
Thredds is a tool for browsing THREDDS catalogs and downloading the data files
they describe.

Usage:

	thredds command [arguments]

The commands are:

	ls          list the services, references and datasets of a catalog
	urls        print the download URLs of the data files below a catalog
	discover    print the catalogs linked from an HTML page
	download    download the data files below a catalog
	version     print the version

Use "thredds help [command]" for more information about a command.

# Configuration

Every flag may also be set in a configuration file given by --config (YAML,
TOML or JSON) or through an environment variable named after the flag with a
THREDDS_ prefix, e.g. THREDDS_RETRIES=3.
*/
package main

// Package config loads widget configurations from files, props bags and the environment.
package config

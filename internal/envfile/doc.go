// Package envfile describes the environment file consumed by the LucidLink
// provisioning tooling: the filespace to mount, where to mount it, where the
// local cache lives, and the servers that take part.
//
// A valid file looks like:
//
//	ll_filespace: fs1
//	ll_username: bob
//	ll_mount_point: /mnt/x
//	ll_cache_location: /var/cache/x
//	ll_data_cache_size: 10G
//	servers:
//	  - ip: 10.0.0.1
//	    hostname: h1
//
// The package holds the fixed schema; checking a document against it is the
// job of the validator subpackage.
package envfile

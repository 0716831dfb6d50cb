// Package load builds graphs from declarative YAML schema files. A file
// names the app, its entities with their attributes, and its links:
//
//	app_id: 7f9c24e5-...
//	entities:
//	  authors:
//	    attrs:
//	      name: {type: string}
//	  posts:
//	    attrs:
//	      title: {type: string, indexed: true}
//	      draft: {type: boolean, optional: true}
//	links:
//	  authorPosts:
//	    forward: {on: authors, has: many, label: posts}
//	    reverse: {on: posts, has: one, label: author}
//
// Files are built through the regular graph builder, so every build-time
// validation applies. A Watcher rebuilds the graph whenever the file
// changes on disk.
package load

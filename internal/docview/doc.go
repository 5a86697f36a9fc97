// Package docview reads FileVault DocView XML into in-memory repository nodes
// and replays them as enter/exit events to a replmeta.NodeValidator.
//
// # DocView Format
//
// A DocView file serializes one node (the jcr:root element) and, optionally,
// its descendants as nested elements:
//
//	<jcr:root xmlns:jcr="http://www.jcp.org/jcr/1.0" xmlns:cq="http://www.day.com/jcr/cq/1.0"
//	    jcr:primaryType="cq:Page">
//	  <jcr:content
//	      jcr:primaryType="cq:PageContent"
//	      cq:lastModified="{Date}2023-06-01T00:00:00.000+02:00"
//	      cq:lastReplicationAction="Activate"/>
//	</jcr:root>
//
// Attribute values use the DocView notation: an optional {Type} prefix,
// multi-values enclosed in [ and ] separated by commas, and backslash escapes.
// Element names are ISO 9075 encoded (_x0020_ for a space).
//
// Properties are stored under their qualified names ("cq:lastModified"); the
// namespace prefixes declared in the file are not resolved to URIs.
package docview

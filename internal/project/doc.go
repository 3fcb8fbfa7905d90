// Package project discovers the Laravel project a class is generated into.
// It reads composer.json for PSR-4 autoload roots, composer.lock for the
// installed Lighthouse version, and lighthouse.yaml for namespace settings,
// and turns a qualified class name into the file path it belongs at.
package project

/*
Package option provides a small option type for string values. The parser
uses it for values which may legally be absent, like the name and group
attributes of reference tags, where the empty string is a legal value of
its own.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

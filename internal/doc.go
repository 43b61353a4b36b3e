// internal is internal packages for Storemon.
//
// Internal packages do not dependents on each other as possible.
// Dependencies to other package are implemented as a interface like
// report.Store or endpoint.Reporter.
//
// The smerr package and the testutil package is exception cases for this
// rule. These packages used by other packages.
package internal

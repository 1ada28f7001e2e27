/*
Package sqldataset reads datasets from and writes them to
SQL databases.

A dataset is stored in a single table with a TEXT column
per attribute, one for the class and an auto incremented
"id" column that keeps the order of the examples. Missing
values are stored as NULL.

The package works over database/sql; the adapter subpackages
provide the connection and the SQL dialect of each backend.
*/
package sqldataset

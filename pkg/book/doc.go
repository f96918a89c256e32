// Package book defines the contact data model for the rolodex storage
// system: validated field values (Name, Phone, Birthday), the Record
// aggregate, the AddressBook collection, serializable snapshots, and the
// Store interface with its backend configuration.
package book

// Package jobnotice scrapes employment notices published on an aggregator
// site. It discovers notice pages from a listing page, extracts a structured
// record from each page (title, short summary and classified sections), and
// stores records that have not been seen before.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, mongo/).
package jobnotice

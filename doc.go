// Package screener provides the functions and types to screen a list of
// listed companies on a few fundamental metrics.
//
// The core functionalities include:
//   - Ingestion: decoding a semicolon separated file into immutable records,
//     skipping (and reporting) the rows that cannot be used.
//   - Metrics: deriving a return percentage and a valuation score for each record.
//   - Screening: selecting the records that meet a minimum valuation score and a
//     maximum risk score, ordered from the best valuation to the worst.
//   - Statistics: summarizing the whole set of loaded records.
//   - Export: writing a selection back in the same tabular format (or JSON lines),
//     including the derived metrics.
//
// This package serves as the foundational logic for the `scr` command-line
// tool.
package screener

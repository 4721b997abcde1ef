// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AddParticipantRequest: user_id, name
  - AddAdminRequest: user_id, name
  - InsertHistoryRequest: user_id, optional name, date (YYYY-MM-DD)
  - DeleteHistoryRequest: user_id, date

User IDs are 64-bit integers end to end; platform snowflake IDs run to
~18 digits and must never pass through a 32-bit or floating point type.

# Response Types

Types for JSON responses:

  - MessageResponse: message
  - ParticipantsResponse / AdminsResponse: sorted name lists
  - WinnerResponse: user_id, message
  - HistoryResponse: history records (name, date, relative "ago")
  - CountsResponse: count records (name, count)
  - ErrorResponse: error, message

# Dates

Dates are plain YYYY-MM-DD strings with no time or timezone component,
exactly as stored.
*/
package models

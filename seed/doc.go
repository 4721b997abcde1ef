// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed restores a server's roster from a JSON backup file.

# File Format

	{
	  "server_id": 431135841671315467,
	  "participants": [{"user_id": 285380929126531072, "name": "Yoshi"}],
	  "admins": [{"user_id": 284044128449462272, "name": "Jord"}],
	  "history": [{"user_id": 285380929126531072, "date": "2022-06-11"}]
	}

# Usage

Run the server binary with -seed to replay a backup and exit:

	minion-meister -f minion_meister.db -seed roster.json

Restores go through the store, so counts are rebuilt to match the history
entries exactly. Existing participants and admins are skipped; history is
appended as-is.
*/
package seed

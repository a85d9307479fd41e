// Copyright (c) 2017 The Decred developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sampleconfig

// FileContents is a string containing the commented example config for
// txtool.
const FileContents = `[Application Options]

; ------------------------------------------------------------------------------
; Data settings
; ------------------------------------------------------------------------------

; The directory to store the transaction database in.  The network name is
; appended to it.  The default is ~/.txtool/data on POSIX OSes,
; $LOCALAPPDATA/Txtool/data on Windows and
; ~/Library/Application Support/Txtool/data on macOS.  Environment variables
; are expanded so they may be used.  NOTE: Windows environment variables are
; typically %VARIABLE%, but they must be accessed with $VARIABLE here.
; datadir=~/.txtool/data

; Database backend of the transaction store.  Valid types are
; {leveldb, pebble, bolt}.  Each type keeps its own database, so switching
; types starts from an empty store.
; dbtype=leveldb


; ------------------------------------------------------------------------------
; Network settings
; ------------------------------------------------------------------------------

; Use testnet.  Addresses given to send and changeaddress must be testnet
; addresses.
; testnet=1

; Use the regression test network.
; regtest=1


; ------------------------------------------------------------------------------
; Transaction settings
; ------------------------------------------------------------------------------

; Address receiving whatever the selected outputs hold beyond the amount of a
; send.  A send that leaves change fails when this is not set.
; changeaddress=

; Largest raw transaction in bytes accepted by decode and import.
; maxtxsize=1048576

; Print decoded transactions as a full structure dump instead of the summary.
; dump=1


; ------------------------------------------------------------------------------
; Debug
; ------------------------------------------------------------------------------

; The directory to write the rotated txtool.log file to.
; logdir=~/.txtool/logs

; Debug logging level.
; Valid levels are {trace, debug, info, warn, error, critical}
; You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set
; log level for individual subsystems.  Use txtool --debuglevel=show to list
; available subsystems.
; debuglevel=info
`

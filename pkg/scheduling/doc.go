/*
Package scheduling groups the execution tier of awaitpool:

  - task: the unit of deferred computation and its write-once outcome
  - workerpool: fixed worker sets consuming unbounded FIFO queues
  - room: name-keyed lazy registry of shared pools
  - scheduler: timed, repeating and cron submission into pools

The await bridge in pkg/await sits on top of these packages.
*/
package scheduling

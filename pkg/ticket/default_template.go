package ticket

// DefaultTemplate is the built-in two-part ticket: a packing slip for the
// front counter and a bakery sheet for the back of house. Both the editor
// and the print path read this one constant, so the surfaces cannot
// drift. Users override it through the template store; clearing the store
// returns to this.
const DefaultTemplate = `<div class="ticket">
  <section class="packing-slip">
    <h2>Packing Slip</h2>
    <p class="order-no">Order {{OrderID}}</p>
    <p><strong>{{Customer Name}}</strong>{{#Phone}} &middot; {{Phone}}{{/Phone}}</p>
    <p>Pickup: {{Due Pickup Date}}{{#Pickup Time}} at {{Pickup Time}}{{/Pickup Time}}</p>
    {{Line Items Table}}
    {{#Notes}}<p class="notes">Notes: {{Notes}}</p>{{/Notes}}
    {{#Order Total}}<p class="total">Total: ${{Order Total}}</p>{{/Order Total}}
  </section>
  <section class="bakery-sheet">
    <h2>Bakery Sheet</h2>
    <p class="order-no">Order {{OrderID}} &middot; {{Customer Name}}</p>
    <p>Due: {{Due Pickup Date}}{{#Pickup Time}} at {{Pickup Time}}{{/Pickup Time}}</p>
    {{Line Items Table}}
    <p class="printed">Printed {{Print Date}}</p>
  </section>
</div>
`
